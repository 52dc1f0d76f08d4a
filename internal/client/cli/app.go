// Package cli implements the interactive commands of the auth service
// command-line client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/servtech/authd/internal/client"
	"github.com/servtech/authd/internal/common"
)

// Input indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// App holds the API client and the I/O streams the commands talk to.
type App struct {
	api    *client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(api *client.Client) *App {
	return &App{api: api, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// Register prompts for credentials and creates a new account. The password
// buffer is wiped before returning. The issued token is printed so it can be
// used with the profile/users commands.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Register(ctx, username, string(password), "")
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %d)\n", res.User.Username, res.User.ID)
	fmt.Fprintf(a.out, "Token: %s\n", res.Token)
	return nil
}

// Login prompts for credentials and prints the issued token.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", res.User.Username, res.User.Role)
	fmt.Fprintf(a.out, "Token: %s\n", res.Token)
	return nil
}

// Profile prints the account behind the given token.
func (a *App) Profile(ctx context.Context, token string) error {
	acc, err := a.api.Profile(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id: %d\nusername: %s\nrole: %s\ncreated: %s\n",
		acc.ID, acc.Username, acc.Role, acc.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// Users prints the full account listing.
func (a *App) Users(ctx context.Context, token string) error {
	list, err := a.api.Users(ctx, token)
	if err != nil {
		return err
	}

	for _, acc := range list {
		fmt.Fprintf(a.out, "%d\t%s\t%s\n", acc.ID, acc.Username, acc.Role)
	}
	return nil
}
