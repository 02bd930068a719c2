package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/weiawesome/qa-service/internal/domain"
	"github.com/weiawesome/qa-service/internal/repository"
	"github.com/weiawesome/qa-service/pkg/database"
	pkglog "github.com/weiawesome/qa-service/pkg/log"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the tables and insert a small demo data set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, conn, err := openStore()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db, domain.Models()...); err != nil {
			return err
		}
		return seed(cmd.Context(), repository.NewRepositories(conn))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed(ctx context.Context, repos *repository.Repositories) error {
	l := pkglog.L()

	ada := &domain.User{FName: "Ada", LName: "Lovelace"}
	alan := &domain.User{FName: "Alan", LName: "Turing"}
	grace := &domain.User{FName: "Grace", LName: "Hopper"}
	for _, u := range []*domain.User{ada, alan, grace} {
		if err := repos.Users.Save(ctx, u); err != nil {
			return err
		}
	}

	engine := &domain.Question{Title: "Analytical Engine", Body: "Can it compose music?", AuthorID: ada.ID}
	halting := &domain.Question{Title: "Halting", Body: "Does every program stop?", AuthorID: alan.ID}
	for _, q := range []*domain.Question{engine, halting} {
		if err := repos.Questions.Save(ctx, q); err != nil {
			return err
		}
	}

	top := &domain.Reply{QuestionID: engine.ID, UserID: grace.ID}
	if err := repos.Replies.Save(ctx, top); err != nil {
		return err
	}
	child := &domain.Reply{QuestionID: engine.ID, ReplyID: &top.ID, UserID: alan.ID}
	if err := repos.Replies.Save(ctx, child); err != nil {
		return err
	}

	for _, f := range []*domain.QuestionFollow{
		{QuestionID: engine.ID, UserID: alan.ID},
		{QuestionID: engine.ID, UserID: grace.ID},
		{QuestionID: halting.ID, UserID: ada.ID},
	} {
		if err := repos.Follows.Save(ctx, f); err != nil {
			return err
		}
	}
	for _, like := range []*domain.QuestionLike{
		{QuestionID: engine.ID, UserID: alan.ID},
		{QuestionID: engine.ID, UserID: grace.ID},
		{QuestionID: halting.ID, UserID: grace.ID},
	} {
		if err := repos.Likes.Save(ctx, like); err != nil {
			return err
		}
	}

	l.Info().Int("users", 3).Int("questions", 2).Int("replies", 2).Msg("seed data inserted")
	return nil
}
