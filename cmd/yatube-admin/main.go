/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// yatube-admin is the administration tool for the blog: it owns group
// creation and removal, which the web handlers deliberately do not expose.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"yatube/internal/entity"
	"yatube/internal/repository"
	"yatube/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dsn string

	groupService service.GroupService
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
)

var rootCmd = &cobra.Command{
	Use:           "yatube-admin",
	Short:         "Administration tooling for the yatube blog",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		db, err := repository.Open(dsn)
		if err != nil {
			return fmt.Errorf("failed to open database %s: %w", dsn, err)
		}
		logger := zap.NewNop().Sugar()
		groupService = service.NewGroupService(repository.NewSQLiteGroupRepository(db), logger)
		postRepo = repository.NewSQLitePostRepository(db)
		userRepo = repository.NewSQLiteUserRepository(db)
		return nil
	},
}

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage groups",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group (slug is derived from the title when omitted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		slug, _ := cmd.Flags().GetString("slug")
		description, _ := cmd.Flags().GetString("description")

		group, err := groupService.CreateGroup(title, slug, description)
		if err != nil {
			return err
		}

		fmt.Printf("created group %q with slug %q\n", group.Title, group.Slug)
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := groupService.All()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tSLUG\tDESCRIPTION")
		for _, group := range groups {
			fmt.Fprintf(w, "%s\t%s\t%s\n", group.Title, group.Slug, group.Description)
		}
		return w.Flush()
	},
}

var groupUpdateCmd = &cobra.Command{
	Use:   "update <slug>",
	Short: "Update a group's title or description (the slug never changes)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := groupService.GetBySlug(args[0])
		if err != nil {
			return fmt.Errorf("unknown group %q: %w", args[0], err)
		}

		if cmd.Flags().Changed("title") {
			group.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			group.Description, _ = cmd.Flags().GetString("description")
		}

		if err := groupService.UpdateGroup(group); err != nil {
			return err
		}

		fmt.Printf("updated group %q\n", group.Slug)
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a group, detaching its posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := groupService.DeleteGroup(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted group %q; its posts are now ungrouped\n", args[0])
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Inspect posts",
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		author, _ := cmd.Flags().GetString("author")
		limit, _ := cmd.Flags().GetInt("limit")

		records, err := listPosts(author, limit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTEXT\tPUBLISHED\tAUTHOR")
		for _, post := range records {
			username := ""
			if post.Author != nil {
				username = post.Author.Username
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", post.ID, post, post.PubDate.Format("2006-01-02 15:04"), username)
		}
		return w.Flush()
	},
}

// listPosts reads a window of the global feed, optionally narrowed to one
// author's posts.
func listPosts(author string, limit int) ([]*entity.Post, error) {
	if author == "" {
		return postRepo.List(limit, 0)
	}
	user, err := userRepo.GetByUsername(author)
	if err != nil {
		return nil, fmt.Errorf("unknown author %q: %w", author, err)
	}
	return postRepo.ListByAuthor(user.ID, limit, 0)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "./yatube.db", "Path to the SQLite database file")

	groupCreateCmd.Flags().String("title", "", "Group title (required)")
	groupCreateCmd.Flags().String("slug", "", "URL slug; derived from the title when empty")
	groupCreateCmd.Flags().String("description", "", "Group description")
	groupCreateCmd.MarkFlagRequired("title")

	groupUpdateCmd.Flags().String("title", "", "New group title")
	groupUpdateCmd.Flags().String("description", "", "New group description")

	postListCmd.Flags().String("author", "", "Only posts by this username")
	postListCmd.Flags().Int("limit", 50, "Maximum number of posts to show")

	groupCmd.AddCommand(groupCreateCmd, groupListCmd, groupUpdateCmd, groupDeleteCmd)
	postCmd.AddCommand(postListCmd)
	rootCmd.AddCommand(groupCmd, postCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
