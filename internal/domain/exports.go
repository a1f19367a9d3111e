package domain

import (
	interfaces "walletgg/internal/domain/interfaces"
	types "walletgg/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username       = types.Username
	ArticleID      = types.ArticleID
	CommentID      = types.CommentID
	ProductID      = types.ProductID
	Credential     = types.Credential
	LoginRequest   = types.LoginRequest
	LoginResponse  = types.LoginResponse
	SignUpRequest  = types.SignUpRequest
	Article        = types.Article
	Comment        = types.Comment
	ArticlePayload = types.ArticlePayload
	CommentPayload = types.CommentPayload
	Product        = types.Product
	ProductOption  = types.ProductOption
	ProductType    = types.ProductType
	ProductSort    = types.ProductSort
	ProductFilter  = types.ProductFilter
	CatalogStatus  = types.CatalogStatus
	GoldPrice      = types.GoldPrice
	Video          = types.Video
	FinanceProfile = types.FinanceProfile
	Notification   = types.Notification
	Level          = types.Level
	Event          = types.Event
	EventKind      = types.EventKind
	APIError       = types.APIError
	ErrorKind      = types.ErrorKind
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyValueStore      = interfaces.KeyValueStore
	APIClient          = interfaces.APIClient
	CredentialProvider = interfaces.CredentialProvider
	Notifier           = interfaces.Notifier
	EventPublisher     = interfaces.EventPublisher
	SessionService     = interfaces.SessionService
	ArticleService     = interfaces.ArticleService
	ProductService     = interfaces.ProductService
	MarketService      = interfaces.MarketService
	FinanceService     = interfaces.FinanceService
)

// Constants and sentinels re-exported from the types subpackage.
const (
	AuthScheme = types.AuthScheme

	KindUnknown      = types.KindUnknown
	KindTransport    = types.KindTransport
	KindServer       = types.KindServer
	KindDecode       = types.KindDecode
	KindPrecondition = types.KindPrecondition

	LevelInfo    = types.LevelInfo
	LevelSuccess = types.LevelSuccess
	LevelWarning = types.LevelWarning
	LevelError   = types.LevelError

	EventSignedUp       = types.EventSignedUp
	EventLoggedIn       = types.EventLoggedIn
	EventSessionCleared = types.EventSessionCleared

	ProductTypeDeposit  = types.ProductTypeDeposit
	ProductTypeSaving   = types.ProductTypeSaving
	ProductTypeAnnuity  = types.ProductTypeAnnuity
	ProductTypeMortgage = types.ProductTypeMortgage
	ProductTypeRent     = types.ProductTypeRent
	ProductTypeCredit   = types.ProductTypeCredit
	ProductTypeETF      = types.ProductTypeETF
	ProductTypeLoan     = types.ProductTypeLoan

	SortDefault = types.SortDefault
	SortTopRate = types.SortTopRate
)

// ErrNotAuthenticated is returned when a write is attempted without a credential.
var ErrNotAuthenticated = types.ErrNotAuthenticated

// Error helpers.
var (
	KindOf   = types.KindOf
	IsKind   = types.IsKind
	StatusOf = types.StatusOf
)
