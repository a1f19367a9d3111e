package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"walletgg/internal/domain"
)

func articlesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Read and write the discussion board",
	}
	cmd.AddCommand(
		articlesListCmd(), articlesShowCmd(), articlesCreateCmd(), articlesUpdateCmd(),
		articlesDeleteCmd(), articlesCommentCmd(), articlesUncommentCmd(),
	)
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func articlesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Articles.FetchAll(cmd.Context()); err != nil {
				return err
			}
			printArticles(cmd.OutOrStdout(), appCtx.Articles.Articles())
			return nil
		},
	}
}

func articlesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show an article with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Articles.FetchOne(cmd.Context(), domain.ArticleID(id)); err != nil {
				return err
			}
			a, _ := appCtx.Articles.Article()
			printArticle(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func articlesCreateCmd() *cobra.Command {
	var p domain.ArticlePayload
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Post a new article",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Articles.Create(cmd.Context(), p); err != nil {
				return reported(err)
			}
			printArticles(cmd.OutOrStdout(), appCtx.Articles.Articles())
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Title, "title", "", "article title")
	cmd.Flags().StringVar(&p.Content, "content", "", "article body")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func articlesUpdateCmd() *cobra.Command {
	var p domain.ArticlePayload
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Edit one of your articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Articles.Update(cmd.Context(), domain.ArticleID(id), p); err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Article %d updated\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Title, "title", "", "article title")
	cmd.Flags().StringVar(&p.Content, "content", "", "article body")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func articlesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one of your articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Articles.Delete(cmd.Context(), domain.ArticleID(id)); err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Article %d deleted\n", id)
			return nil
		},
	}
}

func articlesCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment [article-id] [text]",
		Short: "Comment on an article",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			err = appCtx.Articles.AddComment(cmd.Context(), domain.ArticleID(id), domain.CommentPayload{Content: args[1]})
			if err != nil {
				return reported(err)
			}
			a, _ := appCtx.Articles.Article()
			printArticle(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func articlesUncommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncomment [article-id] [comment-id]",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			articleID, err := parseID(args[0])
			if err != nil {
				return err
			}
			commentID, err := parseID(args[1])
			if err != nil {
				return err
			}
			err = appCtx.Articles.DeleteComment(cmd.Context(), domain.ArticleID(articleID), domain.CommentID(commentID))
			if err != nil {
				return reported(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comment %d deleted\n", commentID)
			return nil
		},
	}
}

// reported hides precondition failures: the store already asked the user to
// log in.
func reported(err error) error {
	if domain.IsKind(err, domain.KindPrecondition) {
		return errSilent
	}
	return err
}
