package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"golang.org/x/term"

	"p4mcp/internal/mcp"
)

var (
	serverCmd   = flag.String("server", "p4mcp -mock", "Command line used to spawn the server under inspection")
	historyFile = flag.String("history", "", "Readline history file (defaults to ~/.p4inspect_history)")
)

func main() {
	flag.Parse()

	parts := strings.Fields(*serverCmd)
	if len(parts) == 0 {
		fmt.Fprintln(os.Stderr, "empty -server command")
		os.Exit(1)
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open server stdin: %v\n", err)
		os.Exit(1)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open server stdout: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot start server: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		stdin.Close()
		cmd.Wait()
	}()

	c := &client{
		enc:     json.NewEncoder(stdin),
		scanner: bufio.NewScanner(stdout),
	}
	c.scanner.Buffer(nil, 10*1024*1024)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		runInteractive(c)
		return
	}
	runPiped(c)
}

// client drives one request/response exchange at a time. The server
// answers every decodable frame with exactly one line, in order, so a
// synchronous read after each send is all the protocol needs.
type client struct {
	enc     *json.Encoder
	scanner *bufio.Scanner
}

func (c *client) roundTrip(msg mcp.Message) (string, error) {
	if err := c.enc.Encode(msg); err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading response: %w", err)
		}
		return "", fmt.Errorf("server closed the stream")
	}
	return c.scanner.Text(), nil
}

func runInteractive(c *client) {
	history := *historyFile
	if history == "" {
		if home, err := os.UserHomeDir(); err == nil {
			history = home + "/.p4inspect_history"
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "p4> ",
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("p4inspect: interactive client for the p4mcp server")
	fmt.Println("Type help for commands, exit to quit")
	fmt.Println()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		runCommand(c, line)
	}
}

func runPiped(c *client) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		runCommand(c, line)
	}
}

func runCommand(c *client, line string) {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	var msg mcp.Message
	switch verb {
	case "help":
		printHelp()
		return
	case "init":
		params, _ := json.Marshal(mcp.InitializeParams{
			ProtocolVersion: mcp.ProtocolVersion,
			Capabilities:    json.RawMessage(`{}`),
			ClientInfo:      mcp.ClientInfo{Name: "p4inspect", Version: mcp.ServerVersion},
		})
		msg = mcp.Message{Method: mcp.MethodInitialize, ID: uuid.NewString(), Params: params}
	case "list":
		msg = mcp.Message{Method: mcp.MethodListTools, ID: uuid.NewString()}
	case "ping":
		msg = mcp.Message{Method: mcp.MethodPing, ID: uuid.NewString()}
	case "call":
		tool, argsJSON, _ := strings.Cut(rest, " ")
		if tool == "" {
			fmt.Println("usage: call <tool> [json-arguments]")
			return
		}
		args := map[string]interface{}{}
		if strings.TrimSpace(argsJSON) != "" {
			if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
				fmt.Printf("invalid arguments: %v\n", err)
				return
			}
		}
		params, _ := json.Marshal(mcp.CallToolParams{Name: tool, Arguments: args})
		msg = mcp.Message{Method: mcp.MethodCallTool, ID: uuid.NewString(), Params: params}
	case "raw":
		if rest == "" {
			fmt.Println("usage: raw <json-frame>")
			return
		}
		decoded, err := mcp.DecodeMessage([]byte(rest))
		if err != nil {
			fmt.Printf("frame would be dropped by the server: %v\n", err)
			return
		}
		msg = decoded
	default:
		fmt.Printf("unknown command: %s (type help)\n", verb)
		return
	}

	reply, err := c.roundTrip(msg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	printReply(reply)
}

func printReply(reply string) {
	var pretty map[string]interface{}
	if err := json.Unmarshal([]byte(reply), &pretty); err != nil {
		fmt.Println(reply)
		return
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Println(reply)
		return
	}
	fmt.Println(string(out))
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  init                       send an initialize request")
	fmt.Println("  list                       list the server's tools")
	fmt.Println("  call <tool> [json-args]    call a tool, e.g. call p4_sync {\"force\":true}")
	fmt.Println("  ping                       check the server is alive")
	fmt.Println("  raw <json-frame>           send a hand-written frame")
	fmt.Println("  quit / exit                leave")
}
