package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/internal/repository"
	"github.com/weiawesome/qa-service/pkg/database"
)

var topN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the most liked and most followed questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, conn, err := openStore()
		if err != nil {
			return err
		}
		defer database.Close(db)

		ctx := cmd.Context()
		repos := repository.NewRepositories(conn)

		liked, err := repos.Questions.MostLiked(ctx, topN)
		if err != nil {
			return err
		}
		followed, err := repos.Questions.MostFollowed(ctx, topN)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		printRanking(w, "MOST LIKED", liked)
		printRanking(w, "MOST FOLLOWED", followed)
		return w.Flush()
	},
}

func init() {
	topCmd.Flags().IntVarP(&topN, "n", "n", 5, "Number of questions per ranking")
	rootCmd.AddCommand(topCmd)
}

func printRanking(w *tabwriter.Writer, title string, questions []domain.Question) {
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintf(w, "RANK\tID\tTITLE\tAUTHOR\n")
	for i, q := range questions {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", i+1, q.ID, q.Title, q.AuthorID)
	}
	fmt.Fprintln(w)
}
