package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"walletgg/internal/domain"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// won renders a KRW amount, e.g. ₩100,000,000.
func won(amount int64) string {
	return money.New(amount, money.KRW).Display()
}

// percent renders a rate with two decimals.
func percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

func bestRate(p domain.Product) string {
	r, ok := p.BestRate()
	if !ok {
		return "-"
	}
	return percent(r)
}

func printProducts(w io.Writer, ps []domain.Product) {
	if len(ps) == 0 {
		fmt.Fprintln(w, "No products.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTYPE\tBANK\tNAME\tBEST RATE")
	for _, p := range ps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Type, p.Company, p.Name, bestRate(p))
	}
	_ = tw.Flush()
}

func printProduct(w io.Writer, p domain.Product) {
	fmt.Fprintf(w, "%s %s (%s)\n", p.Company, p.Name, p.Code)
	fmt.Fprintf(w, "Type: %s\n", p.Type)
	if p.JoinWay != "" {
		fmt.Fprintf(w, "Join via: %s\n", p.JoinWay)
	}
	if p.MaxLimit != nil {
		fmt.Fprintf(w, "Limit: %s\n", won(*p.MaxLimit))
	}
	if p.SpecialCondition != "" {
		fmt.Fprintf(w, "Conditions: %s\n", p.SpecialCondition)
	}
	if p.IsLiked || p.IsJoined {
		fmt.Fprintf(w, "Liked: %t  Joined: %t\n", p.IsLiked, p.IsJoined)
	}
	if len(p.Options) == 0 {
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "TERM\tKIND\tBASE\tMAX")
	for _, o := range p.Options {
		t := "-"
		if o.SaveTerm != nil {
			t = fmt.Sprintf("%dm", *o.SaveTerm)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t, o.RateTypeName, percent(o.Rate), percent(o.MaxRate))
	}
	_ = tw.Flush()
}

func printArticles(w io.Writer, as []domain.Article) {
	if len(as) == 0 {
		fmt.Fprintln(w, "No articles.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tAUTHOR\tTITLE\tCOMMENTS\tCREATED")
	for _, a := range as {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", a.ID, author(a.Nickname, a.User), a.Title, len(a.Comments), a.CreatedAt.Format("2006-01-02"))
	}
	_ = tw.Flush()
}

func printArticle(w io.Writer, a domain.Article) {
	fmt.Fprintf(w, "#%d %s\n", a.ID, a.Title)
	fmt.Fprintf(w, "by %s, %s\n\n", author(a.Nickname, a.User), a.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w, strings.TrimSpace(a.Content))
	if len(a.Comments) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, c := range a.Comments {
		fmt.Fprintf(w, "  [%d] %s: %s\n", c.ID, author(c.Nickname, c.User), c.Content)
	}
}

func author(nickname string, user domain.Username) string {
	if nickname != "" {
		return nickname
	}
	return user.String()
}
