// Surfinfo is a REPL for inspecting shape tessellations.
//
// Run with arguments to execute a single command and exit:
//
//	surfinfo info torus 40 40
//	surfinfo snap trefoil trefoil.png 30
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

var errExit = errors.New("exit")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: surfinfo [command [args...]]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() > 0 {
		if err := exec(os.Stdout, flag.Args()); err != nil && !errors.Is(err, errExit) {
			log.Fatal(err)
		}
		return
	}

	tmp, err := os.CreateTemp("", "surfinfo")
	if err != nil {
		log.Fatal(err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	names := kindNames()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "surfinfo: ",
		HistoryFile: tmp.Name(),
		AutoComplete: newCompleter(commandNames(), map[string][]string{
			"info": names,
			"snap": names,
			"help": commandNames(),
		}),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()

	log.SetOutput(rl.Stderr())

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}

		if runLine(rl.Stdout(), line) {
			break
		}
	}
}

// runLine executes one prompt line and reports whether the prompt should close.
func runLine(w io.Writer, line string) (quit bool) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	err := exec(w, args)
	if errors.Is(err, errExit) {
		return true
	}
	if err != nil {
		log.Println(err)
	}
	return false
}

func commandNames() []string {
	var ns []string
	for name := range commands {
		ns = append(ns, name)
	}
	return ns
}

// exec runs the command named by args[0].
func exec(w io.Writer, args []string) error {
	cmd, ok := commands[args[0]]
	if !ok {
		err := fmt.Errorf("unknown command %q", args[0])
		if m := newCompleter(commandNames(), nil).Match(args[0], 0.3); len(m) > 0 {
			err = fmt.Errorf("%v, did you mean %q?", err, m[0])
		}
		return err
	}
	if err := cmd.run(w, args[1:]); err == errExit {
		return err
	} else if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
