package interfaces

import (
	"context"

	domaintypes "walletgg/internal/domain/types"
)

// SessionService owns the credential and its durable copy.
type SessionService interface {
	CredentialProvider
	Restore()
	SignUp(ctx context.Context, req domaintypes.SignUpRequest) error
	LogIn(ctx context.Context, req domaintypes.LoginRequest) error
	LogOut() error
	IsAuthenticated() bool
	Username() domaintypes.Username
}

// ArticleService caches the discussion board.
type ArticleService interface {
	FetchAll(ctx context.Context) error
	FetchOne(ctx context.Context, id domaintypes.ArticleID) error
	Create(ctx context.Context, p domaintypes.ArticlePayload) error
	Update(ctx context.Context, id domaintypes.ArticleID, p domaintypes.ArticlePayload) error
	Delete(ctx context.Context, id domaintypes.ArticleID) error
	AddComment(ctx context.Context, id domaintypes.ArticleID, p domaintypes.CommentPayload) error
	DeleteComment(ctx context.Context, article domaintypes.ArticleID, id domaintypes.CommentID) error
	Articles() []domaintypes.Article
	Article() (domaintypes.Article, bool)
	Reset()
}

// ProductService caches the product catalog.
type ProductService interface {
	FetchAll(ctx context.Context, f domaintypes.ProductFilter) error
	FetchOne(ctx context.Context, id domaintypes.ProductID) error
	Import(ctx context.Context) error
	Status(ctx context.Context) (domaintypes.CatalogStatus, error)
	// Like and Join toggle and return the new state.
	Like(ctx context.Context, id domaintypes.ProductID) (bool, error)
	Join(ctx context.Context, id domaintypes.ProductID) (bool, error)
	FetchLiked(ctx context.Context) error
	FetchJoined(ctx context.Context) error
	Products() []domaintypes.Product
	Product() (domaintypes.Product, bool)
	Liked() []domaintypes.Product
	Joined() []domaintypes.Product
	Reset()
}

// MarketService caches market data and video search results.
type MarketService interface {
	FetchGoldPrices(ctx context.Context) error
	SearchYouTube(ctx context.Context, keyword string) error
	GoldPrices() []domaintypes.GoldPrice
	Videos() []domaintypes.Video
	Reset()
}

// FinanceService keeps the asset-analysis inputs across restarts.
type FinanceService interface {
	Load() error
	SaveUserInfo(info map[string]any) error
	SaveAnalysis(result map[string]any) error
	Profile() domaintypes.FinanceProfile
	Clear() error
}
