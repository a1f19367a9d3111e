package mockapi

import (
	"time"

	"github.com/shopspring/decimal"

	"walletgg/internal/domain"
)

func term(n int) *int { return &n }

func limit(n int64) *int64 { return &n }

func option(code, kind string, rate, maxRate string, months int) domain.ProductOption {
	return domain.ProductOption{
		Code:         code,
		RateTypeName: kind,
		Rate:         decimal.RequireFromString(rate),
		MaxRate:      decimal.RequireFromString(maxRate),
		SaveTerm:     term(months),
	}
}

// seedProducts returns a small catalog spanning every product type.
func seedProducts() []domain.Product {
	ps := []domain.Product{
		{Code: "WR0001B", Company: "우리은행", Name: "WON플러스예금", Type: domain.ProductTypeDeposit,
			JoinWay: "인터넷,스마트폰", MaxLimit: limit(100_000_000),
			Options: []domain.ProductOption{
				option("WR0001B", "단리", "3.00", "3.35", 6),
				option("WR0001B", "단리", "3.10", "3.55", 12),
			}},
		{Code: "KB0002D", Company: "국민은행", Name: "KB Star 정기예금", Type: domain.ProductTypeDeposit,
			JoinWay: "영업점,인터넷,스마트폰",
			Options: []domain.ProductOption{
				option("KB0002D", "단리", "2.90", "3.40", 12),
				option("KB0002D", "단리", "2.95", "3.45", 24),
			}},
		{Code: "SH0003S", Company: "신한은행", Name: "신한 알.쏠 적금", Type: domain.ProductTypeSaving,
			SpecialCondition: "급여이체 시 우대금리 0.5%p", MaxLimit: limit(500_000),
			Options: []domain.ProductOption{
				option("SH0003S", "단리", "3.50", "4.50", 12),
			}},
		{Code: "HN0004A", Company: "하나은행", Name: "하나 연금저축", Type: domain.ProductTypeAnnuity,
			Options: []domain.ProductOption{
				option("HN0004A", "공시이율", "3.20", "3.20", 120),
			}},
		{Code: "WR0005M", Company: "우리은행", Name: "우리 아파트론", Type: domain.ProductTypeMortgage,
			Options: []domain.ProductOption{
				option("WR0005M", "변동금리", "4.10", "5.60", 360),
			}},
		{Code: "KB0006R", Company: "국민은행", Name: "KB 전세자금대출", Type: domain.ProductTypeRent,
			Options: []domain.ProductOption{
				option("KB0006R", "고정금리", "3.70", "4.90", 24),
			}},
		{Code: "SH0007C", Company: "신한은행", Name: "신한 쏠편한 직장인대출", Type: domain.ProductTypeCredit,
			Options: []domain.ProductOption{
				option("SH0007C", "변동금리", "4.80", "6.20", 12),
			}},
		{Code: "069500", Company: "삼성자산운용", Name: "KODEX 200", Type: domain.ProductTypeETF,
			Options: []domain.ProductOption{
				option("069500", "수익률", "8.40", "8.40", 12),
			}},
	}
	for i := range ps {
		ps[i].ID = domain.ProductID(i + 1)
		for j := range ps[i].Options {
			ps[i].Options[j].ID = int64(i*10 + j + 1)
		}
	}
	return ps
}

func seedGold() []domain.GoldPrice {
	return []domain.GoldPrice{
		{Date: "2024-01-01", Price: decimal.NewFromInt(1000)},
		{Date: "2024-01-02", Price: decimal.RequireFromString("1012.50")},
		{Date: "2024-01-03", Price: decimal.RequireFromString("1008.25")},
	}
}

func seedSilver() []domain.GoldPrice {
	return []domain.GoldPrice{
		{Date: "2024-01-01", Price: decimal.RequireFromString("23.10")},
		{Date: "2024-01-02", Price: decimal.RequireFromString("23.45")},
	}
}

func seedVideos() []domain.Video {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Video{
		{ID: "a1B2c3D4e5F", Title: "예금 vs 적금, 무엇이 유리할까", Description: "금리 비교 가이드",
			Channel: "WALLET.GG", Thumbnail: "https://i.ytimg.com/vi/a1B2c3D4e5F/default.jpg", PublishedAt: at},
		{ID: "g6H7i8J9k0L", Title: "ETF investing basics", Description: "index funds explained",
			Channel: "Money Class", Thumbnail: "https://i.ytimg.com/vi/g6H7i8J9k0L/default.jpg", PublishedAt: at.AddDate(0, 1, 0)},
		{ID: "m1N2o3P4q5R", Title: "Gold price outlook", Description: "금 시세 전망",
			Channel: "Market Watch", Thumbnail: "https://i.ytimg.com/vi/m1N2o3P4q5R/default.jpg", PublishedAt: at.AddDate(0, 2, 0)},
	}
}
