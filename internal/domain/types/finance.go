package types

// FinanceProfile holds the asset-analysis inputs and the last analysis result.
// Both are opaque maps; their shape belongs to the analysis screens.
type FinanceProfile struct {
	UserInfo       map[string]any `json:"user_info,omitempty"`
	AnalysisResult map[string]any `json:"analysis_result,omitempty"`
}

// Empty reports whether nothing has been recorded.
func (p FinanceProfile) Empty() bool { return len(p.UserInfo) == 0 && len(p.AnalysisResult) == 0 }
