package main

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/media"
	"github.com/darrkasamna/catalog/internal/models"
	"github.com/darrkasamna/catalog/internal/prefs"
	apperr "github.com/darrkasamna/catalog/pkg/errors"
)

func printStories(w io.Writer, stories []models.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(w, "No stories found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tVIEWS\tPUBLISHED")
	for _, s := range stories {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			s.ID, s.Title, content.CategoryLabel(s.Category), s.ViewCount,
			time.Unix(0, s.Timestamp).Format("2006-01-02"))
	}
	tw.Flush()
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid story id %q", arg)
	}
	return id, nil
}

func readImage(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

func (a *app) latestCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "List the most recent stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stories, err := a.session.Catalog.LatestStories(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printStories(cmd.OutOrStdout(), stories)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of stories (default 20)")
	return cmd
}

func (a *app) categoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "category <slug>",
		Short: "List stories in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, ok := content.ParseCategory(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q", args[0])
			}
			stories, err := a.session.Catalog.StoriesByCategory(cmd.Context(), category)
			if err != nil {
				return err
			}
			printStories(cmd.OutOrStdout(), stories)
			return nil
		},
	}
}

func (a *app) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "categories",
		Short:       "List the story categories",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range content.Categories() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Label, c.Description)
			}
			tw.Flush()
		},
	}
}

func (a *app) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Search stories by title, excerpt and content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stories, err := a.session.Catalog.SearchStories(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printStories(cmd.OutOrStdout(), stories)
			return nil
		},
	}
}

func (a *app) storyCommand() *cobra.Command {
	var inline bool
	cmd := &cobra.Command{
		Use:   "story <id>",
		Short: "Show a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			opt, err := a.session.Catalog.Story(cmd.Context(), id)
			if err != nil {
				return err
			}
			story, ok := opt.Get()
			if !ok {
				return fmt.Errorf("story %d not found", id)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n%s · %d views\n\n", story.Title, content.CategoryLabel(story.Category), story.ViewCount)
			if embed, ok := content.EmbedURL(story.VideoURL().OrElse("")); ok {
				fmt.Fprintf(w, "Video: %s\n\n", embed)
			}
			if story.HasThumbnail {
				err := a.session.WithThumbnail(cmd.Context(), id, func(h *media.Handle) error {
					return printThumbnail(w, a.session.Codec, h, inline)
				})
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(w, story.Content)
			return nil
		},
	}
	cmd.Flags().BoolVar(&inline, "inline", false, "print the thumbnail as a data URI")
	return cmd
}

func printThumbnail(w io.Writer, codec *media.Codec, h *media.Handle, inline bool) error {
	if h == nil {
		return nil
	}
	if !inline {
		fmt.Fprintf(w, "Thumbnail: %s (%s, %d bytes)\n\n", h.URL, h.ContentType, h.Size)
		return nil
	}
	uri, err := codec.DataURI(h)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Thumbnail: %s\n\n", uri)
	return nil
}

func (a *app) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Record a view of a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.session.Catalog.IncrementView(cmd.Context(), id)
		},
	}
}

func (a *app) commentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments on a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			comments, err := a.session.Catalog.Comments(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(comments) == 0 {
				fmt.Fprintln(w, "No comments yet.")
			}
			for _, c := range comments {
				fmt.Fprintf(w, "%s (%s): %s\n", c.Name, time.Unix(0, c.Timestamp).Format(time.RFC822), c.Message)
			}
			return nil
		},
	}
}

func (a *app) commentCommand() *cobra.Command {
	var name, message string
	cmd := &cobra.Command{
		Use:   "comment <id>",
		Short: "Comment on a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.session.Catalog.AddComment(cmd.Context(), id, name, message); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Comment posted.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "author name")
	cmd.Flags().StringVar(&message, "message", "", "comment text")
	return cmd
}

func (a *app) createCommand() *cobra.Command {
	var draft content.StoryDraft
	var thumbnail string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a story (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if thumbnail == "" {
				id, err := a.session.Catalog.CreateStory(cmd.Context(), draft)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Story %d created.\n", id)
				return nil
			}

			data, contentType, err := readImage(thumbnail)
			if err != nil {
				return err
			}
			id, err := a.session.Catalog.CreateStoryWithThumbnail(cmd.Context(), draft, data, contentType)
			if apperr.IsPartialSuccess(err) {
				fmt.Fprintf(w, "Story %d created, but the thumbnail upload failed. Retry with: catalog thumbnail upload %d %s\n", id, id, thumbnail)
				return err
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Story %d created with thumbnail.\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&draft.Title, "title", "", "story title")
	cmd.Flags().StringVar(&draft.Content, "content", "", "story text")
	cmd.Flags().StringVar(&draft.Category, "category", "", "category slug or value")
	cmd.Flags().StringVar(&draft.VideoURL, "video", "", "YouTube URL")
	cmd.Flags().StringVar(&thumbnail, "thumbnail", "", "thumbnail image file")
	return cmd
}

func (a *app) logoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Show or manage the site logo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := a.session.LogoURL(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "upload <file>",
			Short: "Replace the site logo (admin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, contentType, err := readImage(args[0])
				if err != nil {
					return err
				}
				return a.session.Catalog.UploadLogo(cmd.Context(), data, contentType)
			},
		},
		&cobra.Command{
			Use:   "delete",
			Short: "Remove the site logo (admin)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.session.Catalog.DeleteLogo(cmd.Context())
			},
		},
	)
	return cmd
}

func (a *app) thumbnailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thumbnail",
		Short: "Manage story thumbnails (admin)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "upload <id> <file>",
			Short: "Set a story thumbnail",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				data, contentType, err := readImage(args[1])
				if err != nil {
					return err
				}
				return a.session.Catalog.UploadThumbnail(cmd.Context(), id, data, contentType)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Remove a story thumbnail",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return a.session.Catalog.DeleteThumbnail(cmd.Context(), id)
			},
		},
	)
	return cmd
}

func (a *app) followCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "follow",
		Short: "Follow the website",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.session.Catalog.Follow(cmd.Context())
		},
	}
}

func (a *app) followersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "followers",
		Short: "Show the follower count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.session.Catalog.FollowerCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (a *app) adminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Report whether the current identity is an admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			admin, err := a.session.Catalog.IsAdmin(cmd.Context())
			if err != nil {
				return err
			}
			role := "reader"
			if admin {
				role = "admin"
			}
			fmt.Fprintln(cmd.OutOrStdout(), role)
			return nil
		},
	}
}

func (a *app) nightModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "night-mode [on|off|toggle]",
		Short:     "Show or change the night mode preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := a.session.Prefs

			var on bool
			var err error
			switch {
			case len(args) == 0:
				on, err = store.NightMode(ctx)
			case args[0] == "toggle":
				on, err = prefs.ToggleNightMode(ctx, store)
			case args[0] == "on" || args[0] == "off":
				on = args[0] == "on"
				err = store.SetNightMode(ctx, on)
			default:
				err = fmt.Errorf("expected on, off or toggle, got %q", args[0])
			}
			if err != nil {
				return err
			}

			state := "off"
			if on {
				state = "on"
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Night mode", state)
			return nil
		},
	}
}

func (a *app) tokenCommand() *cobra.Command {
	var admin bool
	cmd := &cobra.Command{
		Use:         "token",
		Short:       "Issue a bearer token signed with jwt_secret",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.subject == "" {
				return errors.New("--subject is required")
			}
			authority, err := auth.NewAuthority(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
			if err != nil {
				return err
			}
			token, err := authority.Issue(a.subject, admin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().BoolVar(&admin, "admin", false, "grant the admin role")
	return cmd
}
