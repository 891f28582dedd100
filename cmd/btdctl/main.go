package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/danmuck/btdctl/internal/config"
	"github.com/danmuck/btdctl/internal/logging"
	"github.com/danmuck/btdctl/internal/observability"
	"github.com/danmuck/btdctl/internal/protocol/session"
)

const defaultConfigPath = "btdctl.toml"

func main() {
	logging.ConfigureRuntime()
	observability.RegisterMetrics()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "btdctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("btdctl", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "client config path")
	socket := fs.String("socket", "", "daemon control socket (overrides config)")
	debug := fs.Bool("debug", false, "log raw wire payloads")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: btdctl [flags] <command> [args]\n\ncommands:\n")
		fmt.Fprintf(fs.Output(), "  add [-raw] [-dir path] [-autostart bool] <torrent>\n")
		fmt.Fprintf(fs.Output(), "  list | lookup <hash> | start-all | stop-all\n")
		fmt.Fprintf(fs.Output(), "  get <prop> | set <prop> <value> | shutdown\n")
		fmt.Fprintf(fs.Output(), "  init-config | check-config\n\nflags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("command required")
	}
	name, cmdArgs := rest[0], rest[1:]

	switch name {
	case "init-config":
		if err := config.WriteTemplate(*configPath, false); err != nil {
			return err
		}
		fmt.Printf("wrote config template to %s\n", *configPath)
		return nil
	case "check-config":
		if _, err := config.LoadClientConfig(*configPath); err != nil {
			return err
		}
		fmt.Printf("validated %s\n", *configPath)
		return nil
	}

	cfg, err := loadClientConfig(*configPath)
	if err != nil {
		return err
	}
	if *socket != "" {
		cfg.SocketPath = *socket
	}
	if *debug {
		cfg.Debug = true
	}

	sess, err := session.Dial(cfg.SocketPath, config.SessionConfig(cfg))
	if err != nil {
		return err
	}
	defer sess.Close()

	switch name {
	case "add":
		return runAdd(sess, cmdArgs)
	case "list":
		return runList(sess)
	case "lookup":
		if len(cmdArgs) != 1 {
			return errors.New("lookup requires exactly one info hash")
		}
		return runLookup(sess, cmdArgs[0])
	case "start-all":
		return reportOutcome(sess.StartAll())
	case "stop-all":
		return reportOutcome(sess.StopAll())
	case "get":
		if len(cmdArgs) != 1 {
			return errors.New("get requires exactly one property name")
		}
		return runGet(sess, cmdArgs[0])
	case "set":
		if len(cmdArgs) != 2 {
			return errors.New("set requires a property name and a value")
		}
		return reportOutcome(sess.Set(cmdArgs[0], parseValue(cmdArgs[1])))
	case "shutdown":
		if err := sess.Shutdown(); err != nil {
			return err
		}
		fmt.Println("daemon shutdown requested")
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown command: %s", name)
	}
}

func runAdd(sess *session.Session, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	raw := fs.Bool("raw", false, "read the torrent locally and submit its bytes")
	dir := fs.String("dir", "", "download directory override")
	autostart := fs.String("autostart", "", "override daemon start behavior (true|false)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("add requires exactly one torrent path")
	}

	req := session.AddRequest{Directory: *dir}
	if *raw {
		data, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			return err
		}
		req.Raw = data
	} else {
		req.Path = fs.Arg(0)
	}
	if *autostart != "" {
		v, err := strconv.ParseBool(*autostart)
		if err != nil {
			return fmt.Errorf("bad -autostart value %q: %w", *autostart, err)
		}
		req.Autostart = &v
	}
	return reportOutcome(sess.AddTorrent(req))
}

func runList(sess *session.Session) error {
	torrents, ok, err := sess.List()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("daemon declined listing")
		return nil
	}
	for _, tor := range torrents {
		fmt.Printf("%4d  %s  %s\n", tor.ID(), tor.Hash(), tor.Name())
	}
	return nil
}

func runLookup(sess *session.Session, hash string) error {
	tor, found, err := sess.Lookup(hash)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("not found")
		return nil
	}
	fmt.Printf("%4d  %s  %s\n", tor.ID(), tor.Hash(), tor.Name())
	return nil
}

func runGet(sess *session.Session, prop string) error {
	value, ok, err := sess.Get(prop)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("unset")
		return nil
	}
	fmt.Printf("%v\n", value)
	return nil
}

func reportOutcome(ok bool, err error) error {
	if err != nil {
		return err
	}
	if ok {
		fmt.Println("succeeded")
	} else {
		fmt.Println("daemon refused")
	}
	return nil
}

// parseValue maps a CLI argument onto the narrowest wire type the
// daemon accepts: integer, then boolean, then string.
func parseValue(raw string) interface{} {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return boolValue(b)
	}
	return raw
}

func boolValue(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
