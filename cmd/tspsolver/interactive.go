package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/report"
	"github.com/katalvlaran/heldkarp/tsp"
)

var errInvalidCount = errors.New("invalid input, please enter a valid positive integer")

// session is the interactive menu loop: choose an input source, solve,
// optionally save the report, repeat. End of input ends the session cleanly.
type session struct {
	in  *bufio.Reader
	out io.Writer
	ui  styles
	cfg config
	log *zap.Logger
}

func newSession(r io.Reader, w io.Writer, ui styles, cfg config, log *zap.Logger) *session {
	return &session{
		in:  bufio.NewReader(r),
		out: w,
		ui:  ui,
		cfg: cfg,
		log: log,
	}
}

// Run drives the menu until the user exits or input ends.
func (s *session) Run() error {
	s.println(s.ui.title.Render("=== TSP Solver ==="))
	s.println("Solve the Traveling Salesman Problem exactly.")

	for {
		s.println("")
		s.println("Please choose how to provide input:")
		s.println("[1] Enter distances manually")
		s.println("[2] Load distances from a file")
		s.println("[0] Exit program")

		choice, err := s.prompt()
		if err != nil {
			return endOfInput(err)
		}

		var dist [][]int
		switch choice {
		case "0":
			s.println("Thank you for using TSP Solver. Goodbye!")
			return nil
		case "1":
			dist, err = s.readManual()
		case "2":
			dist, err = s.readFromFile()
		default:
			s.warn("Unrecognized option. Please select 0, 1, or 2.")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.warn(err.Error())
			continue
		}

		r, err := solve(dist, s.cfg.opts)
		if err != nil {
			s.warn(err.Error())
			continue
		}
		s.log.Debug("instance solved",
			zap.Int("cities", len(dist)),
			zap.Int("cost", r.Cost),
			zap.Duration("elapsed", r.Elapsed),
		)
		printReport(s.out, s.ui, r)

		if err = s.offerSave(r); err != nil {
			return endOfInput(err)
		}

		again, err := s.askYesNo("Do you want to solve another TSP instance? (y/n)", "Invalid response. Please answer 'y' or 'n'.")
		if err != nil {
			return endOfInput(err)
		}
		if !again {
			s.println("")
			s.println("Thank you for using TSP Solver. Farewell!")
			return nil
		}
	}
}

// readManual asks for n and then n rows.
func (s *session) readManual() ([][]int, error) {
	s.println("Enter the number of cities:")
	line, err := s.prompt()
	if err != nil {
		return nil, err
	}
	n, err := matrix.ParseCount(line)
	if err != nil {
		return nil, errInvalidCount
	}
	if n > s.cfg.opts.MaxCities {
		return nil, fmt.Errorf("%w: %d cities, at most %d supported", tsp.ErrInvalidSize, n, s.cfg.opts.MaxCities)
	}

	s.println("Now, enter each row of the distance matrix (space-separated integers):")
	return matrix.ReadRows(s.in, n)
}

// readFromFile asks for a file name inside the data directory.
func (s *session) readFromFile() ([][]int, error) {
	s.printf("Enter the filename (from the %q directory, e.g., distances.txt):\n", s.cfg.dir+"/")
	name, err := s.prompt()
	if err != nil {
		return nil, err
	}
	dist, err := matrix.ReadFile(filepath.Join(s.cfg.dir, name))
	if err != nil {
		return nil, fmt.Errorf("could not load the file: %w", err)
	}
	return dist, nil
}

// offerSave asks whether to persist r and writes it into the data directory.
// Only input errors are returned; a failed write is reported and the session goes on.
func (s *session) offerSave(r report.Report) error {
	yes, err := s.askYesNo("Would you like to save the results to a file? (y/n)", "Invalid choice. Please type 'y' or 'n'.")
	if err != nil || !yes {
		return err
	}

	s.println("Enter an output filename (e.g., result.txt):")
	name, err := s.prompt()
	if err != nil {
		return err
	}
	path := filepath.Join(s.cfg.dir, name)
	if err = report.Save(path, r); err != nil {
		s.warn("Error writing to file: " + err.Error())
		return nil
	}
	s.printf("Results successfully saved to %q.\n", path)
	return nil
}

// askYesNo repeats question until the answer is y or n (case-insensitive).
func (s *session) askYesNo(question, retry string) (bool, error) {
	for {
		s.println("")
		s.println(question)
		answer, err := s.prompt()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		s.warn(retry)
	}
}

// prompt prints the input marker and reads one trimmed line.
// It returns io.EOF only when no further input exists.
func (s *session) prompt() (string, error) {
	fmt.Fprint(s.out, s.ui.help.Render("→")+" ")
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *session) warn(msg string) {
	fmt.Fprintln(s.out, s.ui.err.Render(msg))
}

func (s *session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// endOfInput turns io.EOF into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
