// Package cli implements the interactive prover front end: it collects a
// username and password, registers the identity's commitments and runs
// authentication attempts against the server.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/reymom/zkp-chaum-pedersen/internal/client/client"
	"github.com/reymom/zkp-chaum-pedersen/internal/client/config"
	"github.com/reymom/zkp-chaum-pedersen/internal/client/services"
	"github.com/reymom/zkp-chaum-pedersen/internal/zkp"
)

type App struct {
	config      *config.Config
	authService *services.AuthService
	apiClient   *client.GRPCClient
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	group := zkp.Group1024()
	if c.GroupBits == 2048 {
		group = zkp.Group2048()
	}

	as := services.NewAuthService(apiClient, group, zkp.CryptoSource{})

	return &App{
		config:      c,
		authService: as,
		apiClient:   apiClient,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer wipe(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	log.Printf("Registered %q", userName)
}

func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer wipe(password)

	sessionID, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	log.Printf("You logged in! session_id = %s", sessionID)
}

func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()
	runREPL(ctx, a, a.reader)
}

// wipe zeroes sensitive byte slices after use.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
