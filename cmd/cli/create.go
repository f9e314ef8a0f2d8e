package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/cobra"

	"clickup-task-bot/internal/model"
	"clickup-task-bot/internal/task"
	"clickup-task-bot/internal/task/command"
)

func newCreateCmd(newUC useCaseFactory) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task from a /task command body",
		Long: `Reads a command body from stdin (or --file) in the same four-line format
the chat bot accepts:

  space[.folder].list
  title
  description
  custom fields`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readBody(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			req, err := command.Parse(stripTaskPrefix(raw))
			if err != nil {
				fmt.Fprintln(out, task.ErrorReply(err))
				return exitError{code: 1, err: err}
			}

			uc, err := newUC()
			if err != nil {
				return err
			}

			res, err := uc.Create(cmd.Context(), cliScope(), task.CreateInput{Request: req})
			if err != nil {
				fmt.Fprintln(out, task.ErrorReply(err))
				return exitError{code: 1, err: err}
			}

			fmt.Fprintln(out, task.SuccessReply(res.Task))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the command body from this file instead of stdin")
	return cmd
}

func readBody(stdin io.Reader, file string) (string, error) {
	if file == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(b), nil
}

// stripTaskPrefix lets a pasted chat message ("/task ...") be used verbatim.
func stripTaskPrefix(raw string) string {
	trimmed := strings.TrimLeft(raw, " \t\r\n")
	if !strings.HasPrefix(trimmed, "/task") {
		return raw
	}
	rest := strings.TrimPrefix(trimmed, "/task")
	if rest != "" && !strings.ContainsAny(rest[:1], " \t\r\n") {
		return raw
	}
	return rest
}

func cliScope() model.Scope {
	sc := model.Scope{UserID: "cli"}
	if u, err := user.Current(); err == nil {
		sc.Username = u.Username
	}
	return sc
}
