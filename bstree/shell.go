package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"

	"github.com/antoniofull/bstree/src/bst"
)

// Shell runs commands against a single tree.
type Shell struct {
	tree *bst.Tree[int]
	out  io.Writer

	prompt *color.Color
	ok     *color.Color
	fail   *color.Color
	value  *color.Color
}

func NewShell(tree *bst.Tree[int], out io.Writer) *Shell {
	return &Shell{
		tree:   tree,
		out:    out,
		prompt: color.New(color.FgMagenta),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		value:  color.New(color.FgCyan),
	}
}

func (s *Shell) DisableColor() {
	for _, c := range []*color.Color{s.prompt, s.ok, s.fail, s.value} {
		c.DisableColor()
	}
}

// Run reads commands line by line until quit or the end of input.
func (s *Shell) Run(in io.Reader) error {
	var scanner = bufio.NewScanner(in)
	s.printHelp()
	for {
		s.prompt.Fprint(s.out, "bstree> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if quit := s.Exec(scanner.Text()); quit {
			return nil
		}
	}
}

// Exec runs a single command line, it returns true when the shell should stop.
func (s *Shell) Exec(line string) (quit bool) {
	var fields = strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	var cmd, args = strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit", "q":
		return true
	case "insert", "add":
		err = s.insert(args)
	case "remove", "delete", "rm":
		err = s.remove(args)
	case "find":
		err = s.find(args)
	case "parent":
		err = s.parent(args)
	case "min":
		err = s.printNode(s.tree.FindMin())
	case "max":
		err = s.printNode(s.tree.FindMax())
	case "height":
		s.ok.Fprintf(s.out, "min height: %d, max height: %d\n", s.tree.MinHeight(), s.tree.MaxHeight())
	case "balanced":
		s.ok.Fprintln(s.out, strconv.FormatBool(s.tree.IsBalanced()))
	case "inorder", "values":
		s.printValues(s.tree.Traverse)
	case "preorder":
		s.printValues(s.tree.PreOrder)
	case "postorder":
		s.printValues(s.tree.PostOrder)
	case "print":
		fmt.Fprint(s.out, s.tree.String())
	case "stats":
		s.stats()
	case "clear":
		s.tree.Clear()
		s.ok.Fprintln(s.out, "OK")
	case "help":
		s.printHelp()
	default:
		s.fail.Fprintf(s.out, "Unknown command %q. Type \"help\" for a list of commands.\n", cmd)
	}

	if err != nil {
		s.fail.Fprintln(s.out, err)
	}
	return false
}

func parseValues(args []string) ([]int, error) {
	var values = make([]int, 0, len(args))
	for _, arg := range args {
		var v, err = strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, errors.Wrapf(bst.ErrInvalidArgument, "%q is not an integer", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// Exactly one integer argument.
func parseValue(cmd string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.Wrapf(bst.ErrInvalidArgument, "%s takes exactly one value", cmd)
	}
	var values, err = parseValues(args)
	if err != nil {
		return 0, errors.Wrap(err, cmd)
	}
	return values[0], nil
}

func (s *Shell) insert(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(bst.ErrInvalidArgument, "insert needs at least one value")
	}
	var values, err = parseValues(args)
	if err != nil {
		return errors.Wrap(err, "insert")
	}
	for _, v := range values {
		if _, inserted := s.tree.Insert(v); inserted {
			s.ok.Fprintf(s.out, "inserted %d\n", v)
		} else {
			s.fail.Fprintf(s.out, "%d is already present\n", v)
		}
	}
	return nil
}

func (s *Shell) remove(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(bst.ErrInvalidArgument, "remove needs at least one value")
	}
	var values, err = parseValues(args)
	if err != nil {
		return errors.Wrap(err, "remove")
	}
	for _, v := range values {
		if s.tree.Delete(v) {
			s.ok.Fprintf(s.out, "removed %d\n", v)
		} else {
			s.fail.Fprintf(s.out, "%d is not present\n", v)
		}
	}
	return nil
}

func (s *Shell) find(args []string) error {
	var v, err = parseValue("find", args)
	if err != nil {
		return err
	}
	return s.printNode(s.tree.Find(v))
}

func (s *Shell) parent(args []string) error {
	var v, err = parseValue("parent", args)
	if err != nil {
		return err
	}
	return s.printNode(s.tree.FindParentNode(v))
}

func (s *Shell) printNode(node *bst.Node[int], err error) error {
	if err != nil {
		return err
	}
	s.value.Fprintln(s.out, node.Value())
	return nil
}

func (s *Shell) printValues(walk func(func(int))) {
	var values []string
	walk(func(v int) {
		values = append(values, strconv.Itoa(v))
	})
	s.value.Fprintln(s.out, strings.Join(values, " "))
}

func (s *Shell) stats() {
	var minValue, maxValue = "-", "-"
	if n, err := s.tree.FindMin(); err == nil {
		minValue = strconv.Itoa(n.Value())
	}
	if n, err := s.tree.FindMax(); err == nil {
		maxValue = strconv.Itoa(n.Value())
	}

	var tw = table.NewWriter()
	tw.SetOutputMirror(s.out)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Stat", "Value"})
	tw.AppendRows([]table.Row{
		{"values", s.tree.Len()},
		{"min", minValue},
		{"max", maxValue},
		{"min height", s.tree.MinHeight()},
		{"max height", s.tree.MaxHeight()},
		{"balanced", s.tree.IsBalanced()},
	})
	tw.Render()
}

func (s *Shell) printHelp() {
	s.prompt.Fprintln(s.out, "bstree - Available Commands")
	var commands = [][2]string{
		{"insert", "args: [VALUE...]"},
		{"remove", "args: [VALUE...]"},
		{"find", "args: [VALUE]"},
		{"parent", "args: [VALUE]"},
		{"min", ""},
		{"max", ""},
		{"height", ""},
		{"balanced", ""},
		{"inorder", ""},
		{"preorder", ""},
		{"postorder", ""},
		{"print", ""},
		{"stats", ""},
		{"clear", ""},
		{"help", ""},
		{"quit", ""},
	}
	for _, c := range commands {
		fmt.Fprintf(s.out, "\t%s %s\n", s.ok.Sprintf("%-9s", c[0]), c[1])
	}
}
