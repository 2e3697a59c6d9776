package main

import (
	"context"
	"fmt"

	"github.com/devnexus/devnexus/internal/auth"
	"github.com/devnexus/devnexus/internal/tui/theme"
	"github.com/spf13/cobra"
)

var loginFlags struct {
	email    string
	password string
	google   bool
}

var signupFlags struct {
	name     string
	email    string
	password string
	confirm  string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to DevNexus",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a DevNexus account",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&loginFlags.email, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginFlags.password, "password", "p", "", "Account password")
	loginCmd.Flags().BoolVar(&loginFlags.google, "google", false, "Continue with Google")

	signupCmd.Flags().StringVar(&signupFlags.name, "name", "", "Full name")
	signupCmd.Flags().StringVarP(&signupFlags.email, "email", "e", "", "Account email")
	signupCmd.Flags().StringVarP(&signupFlags.password, "password", "p", "", "Account password")
	signupCmd.Flags().StringVar(&signupFlags.confirm, "confirm", "", "Repeat the password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	ctx := cmd.Context()
	var sess *auth.Session
	if loginFlags.google {
		sess, err = e.auth.Google(ctx)
	} else {
		sess, err = e.auth.Login(ctx, auth.Credentials{
			Email:    loginFlags.email,
			Password: loginFlags.password,
		})
	}
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	printWelcome(e, sess)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	sess, err := e.auth.SignUp(cmd.Context(), auth.Credentials{
		Name:            signupFlags.name,
		Email:           signupFlags.email,
		Password:        signupFlags.password,
		ConfirmPassword: signupFlags.confirm,
	})
	if err != nil {
		return fmt.Errorf("sign up failed: %w", err)
	}
	printWelcome(e, sess)
	return nil
}

func printWelcome(e *env, sess *auth.Session) {
	s := theme.Current().S()
	_, _ = fmt.Fprintf(e.out, "%s %s\n", s.Success.Render("✓ Signed in as"), s.Value.Render(sess.User.Name+" <"+sess.User.Email+">"))
}

func runLogout(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.auth.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	e.catalog.Logout()
	_, _ = fmt.Fprintln(e.out, "Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	return whoami(cmd.Context(), e)
}

func whoami(ctx context.Context, e *env) error {
	sess, owner, err := e.session(ctx)
	if err != nil {
		return err
	}
	s := theme.Current().S()
	_, _ = fmt.Fprintf(e.out, "%s\n%s %s\n%s %s\n",
		s.HeaderTitle.Render(sess.User.Name),
		s.Muted.Render("email:"), sess.User.Email,
		s.Muted.Render("owner key:"), owner)
	return nil
}
