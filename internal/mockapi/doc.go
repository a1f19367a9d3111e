// Package mockapi is an in-memory stand-in for the WALLET.GG REST API, used
// by cmd/mockapi during development and by end-to-end tests.
//
// HTTP API
//
//	POST   /accounts/signup/                      register
//	POST   /accounts/login/                       {username,password} -> {key}
//	GET    /articles/articles/                    list articles
//	POST   /articles/articles/                    create (token)
//	GET    /articles/articles/{id}/               article with comments
//	PUT    /articles/articles/{id}/               update (token, author)
//	DELETE /articles/articles/{id}/               delete (token, author)
//	POST   /articles/articles/{id}/comments/      comment (token)
//	DELETE /articles/comments/{id}/               delete comment (token, author)
//	GET    /products/deposit-products/            ?type=&bank=&term=&sort=top_rate
//	GET    /products/deposit-products/{id}/       detail, with is_liked/is_joined
//	POST   /products/deposit-products/{id}/like/  toggle (token)
//	POST   /products/deposit-products/{id}/join/  toggle (token)
//	GET    /products/liked-list/                  (token)
//	GET    /products/joined-list/                 (token)
//	GET    /products/save-deposit-products/       load the catalog
//	GET    /products/check-status/                catalog counts by type
//	GET    /services/gold-silver/                 {gold:[...], silver:[...]}
//	GET    /services/youtube/?keyword=            {items:[...]}
//
// Authenticated routes expect "Authorization: Token <key>". All state is held
// in memory and lost on exit.
package mockapi
