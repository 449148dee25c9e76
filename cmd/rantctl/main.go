// rantctl is a terminal client for the community API. It drives the same
// sync clients the pages use: fetch a working copy, render it, and push
// mutations followed by a refresh. With -offline it works against a local
// Redis copy of the data instead of a server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/valo-rant/community-api/internal/auth"
	"github.com/valo-rant/community-api/internal/backend/local"
	"github.com/valo-rant/community-api/internal/backend/remote"
	"github.com/valo-rant/community-api/internal/core/ports"
	"github.com/valo-rant/community-api/internal/infrastructure/kv"
	"github.com/valo-rant/community-api/internal/syncclient"
	"github.com/valo-rant/community-api/internal/view"
	"github.com/valo-rant/community-api/pkg/logger"
)

const usage = `Usage: rantctl [flags] <command>

Commands:
  agents                     show the agent grid (-search, -role)
  agent <name>               show one agent's detail view
  rant list                  show the rant board
  rant create                create a post (-author, -content, -image)
  rant reply <post-id>       reply to a post (-author, -content)
  rant delete <post-id>      delete a post (admin)
  patches                    show the patch notes
  patch create               create a patch entry (-version, -date, -text) (admin)
  patch delete <id>          delete a patch entry (admin)
  login                      log in and cache the session (-email, -password)
  logout                     drop the cached session

Flags:
`

type cli struct {
	server  string
	offline bool
	redis   string

	search  string
	role    string
	author  string
	content string
	image   string
	version string
	date    string
	text    string
	email   string
	pass    string
}

func main() {
	var c cli
	flag.StringVar(&c.server, "server", "http://localhost:3000", "community API base URL")
	flag.BoolVar(&c.offline, "offline", false, "work against the local Redis copy instead of a server")
	flag.StringVar(&c.redis, "redis", "localhost:6379", "Redis address for the session cache and offline data")
	flag.StringVar(&c.search, "search", "", "agent name filter")
	flag.StringVar(&c.role, "role", syncclient.RoleFilterAll, "agent role filter")
	flag.StringVar(&c.author, "author", "", "post or reply author")
	flag.StringVar(&c.content, "content", "", "post or reply content")
	flag.StringVar(&c.image, "image", "", "post image data URL")
	flag.StringVar(&c.version, "version", "", "patch version")
	flag.StringVar(&c.date, "date", "", "patch date")
	flag.StringVar(&c.text, "text", "", "patch body text")
	flag.StringVar(&c.email, "email", "", "login email")
	flag.StringVar(&c.pass, "password", "", "login password")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.New(logger.Options{Level: "warn", Pretty: true, Output: os.Stderr})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.run(ctx, log, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "rantctl:", err)
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, log zerolog.Logger, args []string) error {
	store := remote.New(c.server)

	// The session cache lives in Redis when reachable, so logins survive
	// between invocations. Without Redis each run starts logged out.
	var sessions *syncclient.SessionCache
	var redisClient *redis.Client
	if client, err := kv.Connect(ctx, kv.Config{Addr: c.redis}); err == nil {
		redisClient = client
		defer redisClient.Close()
		sessions = syncclient.NewSessionCache(kv.NewRedisStore(client))
	} else {
		if c.offline {
			return fmt.Errorf("offline mode needs Redis at %s: %w", c.redis, err)
		}
		sessions = syncclient.NewSessionCache(kv.NewMemoryStore())
	}

	var agentBackend syncclient.AgentBackend = store
	var postBackend syncclient.PostBackend = store
	var patchBackend syncclient.PatchBackend = store
	if c.offline {
		offline := local.New(kv.NewRedisStore(redisClient), auth.ClaimPolicy{})
		postBackend = offline
		patchBackend = offline
		agentBackend = nil // the catalog has no offline copy
	}

	session := sessions.Load(ctx)

	switch args[0] {
	case "agents", "agent":
		if agentBackend == nil {
			return fmt.Errorf("agents are not available offline")
		}
		page := syncclient.NewAgentsPage(agentBackend, log)
		page.Search = c.search
		page.RoleFilter = c.role
		if err := page.Client.Refresh(ctx); err != nil {
			return err
		}
		if args[0] == "agent" {
			if len(args) < 2 {
				return fmt.Errorf("agent: name required")
			}
			return printAgentDetail(page, args[1])
		}
		fmt.Println(page.Render())
		return nil

	case "rant":
		page := syncclient.NewRantBoardPage(postBackend, log)
		page.Client.SetSession(session)
		return c.runRant(ctx, page, args[1:])

	case "patches":
		page := syncclient.NewPatchNotesPage(patchBackend, log)
		page.Client.SetSession(session)
		if err := page.Client.Refresh(ctx); err != nil {
			return err
		}
		fmt.Println(page.Render())
		return nil

	case "patch":
		page := syncclient.NewPatchNotesPage(patchBackend, log)
		page.Client.SetSession(session)
		return c.runPatch(ctx, page, args[1:])

	case "login":
		s, err := store.Login(ctx, c.email, c.pass)
		if err != nil {
			return err
		}
		if err := sessions.Save(ctx, s); err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", s.Username)
		return nil

	case "logout":
		if err := sessions.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *cli) runRant(ctx context.Context, page *syncclient.RantBoardPage, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		if err := page.Client.Refresh(ctx); err != nil {
			return err
		}
	case "create":
		var image *string
		if c.image != "" {
			image = &c.image
		}
		err := page.CreatePost(ctx, ports.CreatePostInput{
			Author:  c.author,
			Content: c.content,
			Image:   image,
		})
		if err != nil {
			return err
		}
	case "reply":
		if len(args) < 2 {
			return fmt.Errorf("reply: post id required")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := page.AddReply(ctx, id, ports.CreateReplyInput{Author: c.author, Content: c.content}); err != nil {
			return err
		}
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("delete: post id required")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := page.DeletePost(ctx, id); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown rant command %q", args[0])
	}

	fmt.Println(page.Render())
	return nil
}

func (c *cli) runPatch(ctx context.Context, page *syncclient.PatchNotesPage, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("patch: subcommand required")
	}

	switch args[0] {
	case "create":
		err := page.CreatePatch(ctx, ports.CreatePatchInput{
			Version: c.version,
			Date:    c.date,
			Text:    c.text,
		})
		if err != nil {
			return err
		}
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("delete: patch id required")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := page.DeletePatch(ctx, id); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown patch command %q", args[0])
	}

	fmt.Println(page.Render())
	return nil
}

func printAgentDetail(page *syncclient.AgentsPage, name string) error {
	for _, a := range page.Client.WorkingCopy() {
		if strings.EqualFold(a.DisplayName, name) {
			fmt.Println(view.RenderAgentDetail(a))
			return nil
		}
	}
	return fmt.Errorf("no agent named %q", name)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
