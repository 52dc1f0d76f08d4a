package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/servtech/authd/internal/client"
	"github.com/servtech/authd/internal/client/cli"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: authcli [-addr URL] [-t TOKEN] register|login|profile|users")
	os.Exit(2)
}

func main() {
	addr := flag.String("addr", "http://localhost:3000", "server base URL")
	tok := flag.String("t", os.Getenv("TOKEN"), "bearer token (defaults to $TOKEN)")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	ctx := context.Background()
	app := cli.NewApp(client.New(*addr))

	var err error
	switch flag.Arg(0) {
	case "register":
		err = app.Register(ctx)
	case "login":
		err = app.Login(ctx)
	case "profile":
		err = app.Profile(ctx, *tok)
	case "users":
		err = app.Users(ctx, *tok)
	default:
		usage()
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}
