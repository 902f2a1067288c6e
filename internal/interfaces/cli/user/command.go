package user

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orris-inc/setracker/internal/application/user/dto"
	"github.com/orris-inc/setracker/internal/application/user/usecases"
	"github.com/orris-inc/setracker/internal/infrastructure/auth"
	"github.com/orris-inc/setracker/internal/infrastructure/repository"
	"github.com/orris-inc/setracker/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/setracker/internal/shared/authorization"
)

var flags bootstrap.Flags

type createOptions struct {
	username   string
	email      string
	firstName  string
	lastName   string
	password   string
	teamMember bool
	admin      bool
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error)
}

type SetTeamMemberExecutor interface {
	Execute(ctx context.Context, cmd usecases.SetTeamMemberCommand) (*dto.UserDTO, error)
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	flags.Register(cmd)
	cmd.AddCommand(newCreateCommand(), newSetTeamCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	var opts createOptions
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long:  `Create a user account. The password is read from the terminal when --password is omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap.Setup(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			if opts.password == "" {
				pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				opts.password = pw
			}

			uc := usecases.NewCreateUserUseCase(
				repository.NewUserRepository(rt.DB, rt.Log),
				auth.NewBcryptPasswordHasher(rt.Config.Auth.Password.BcryptCost),
				rt.Log.Named("user"),
			)
			return CreateUser(cmd.Context(), cmd.OutOrStdout(), uc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "Login name (required)")
	cmd.Flags().StringVar(&opts.email, "email", "", "Email address")
	cmd.Flags().StringVar(&opts.firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&opts.lastName, "last-name", "", "Last name")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&opts.teamMember, "team", false, "Flag the user as an internal team member")
	cmd.Flags().BoolVar(&opts.admin, "admin", false, "Grant the admin role")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newSetTeamCommand() *cobra.Command {
	var member bool
	cmd := &cobra.Command{
		Use:   "set-team <username>",
		Short: "Set or clear a user's team membership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap.Setup(flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			uc := usecases.NewSetTeamMemberUseCase(repository.NewUserRepository(rt.DB, rt.Log), rt.Log.Named("user"))
			return SetTeamMember(cmd.Context(), cmd.OutOrStdout(), uc, args[0], member)
		},
	}

	cmd.Flags().BoolVar(&member, "member", true, "Team membership to set; pass --member=false to revoke")
	return cmd
}

// CreateUser runs the create use case and reports the new account.
func CreateUser(ctx context.Context, out io.Writer, uc CreateUserExecutor, opts createOptions) error {
	role := string(authorization.RoleUser)
	if opts.admin {
		role = string(authorization.RoleAdmin)
	}

	created, err := uc.Execute(ctx, usecases.CreateUserCommand{
		Username:     opts.username,
		Email:        opts.email,
		Password:     opts.password,
		FirstName:    opts.firstName,
		LastName:     opts.lastName,
		IsTeamMember: opts.teamMember,
		Role:         role,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(out, "Created user %s (id %d, role %s, team member: %t)\n",
		created.Username, created.ID, created.Role, created.IsTeamMember)
	return nil
}

// SetTeamMember runs the membership use case and reports the result.
func SetTeamMember(ctx context.Context, out io.Writer, uc SetTeamMemberExecutor, username string, member bool) error {
	updated, err := uc.Execute(ctx, usecases.SetTeamMemberCommand{Username: username, IsTeamMember: member})
	if err != nil {
		return fmt.Errorf("failed to update team membership: %w", err)
	}

	fmt.Fprintf(out, "User %s team member: %t\n", updated.Username, updated.IsTeamMember)
	return nil
}

// readPassword prompts twice without echo on a terminal and reads a single
// line otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		first, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprint(prompt, "Confirm password: ")
		second, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		if string(first) != string(second) {
			return "", fmt.Errorf("passwords do not match")
		}
		return string(first), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
