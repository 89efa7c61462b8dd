package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine reads one line of raw input. An error here means the input stream
// is gone; callers treat it as "leave this menu".
func (s *Shell) readLine(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readChoice reads a menu choice, reprompting until the input is numeric.
func (s *Shell) readChoice() (int, error) {
	for {
		line, err := s.readLine("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Your input is invalid!")
			continue
		}
		return n, nil
	}
}

// promptInt reads an integer, reprompting on malformed input.
func (s *Shell) promptInt(label string) (int64, error) {
	for {
		line, err := s.readLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Your input is invalid!")
			continue
		}
		return n, nil
	}
}

// promptFloat reads a number, reprompting on malformed input.
func (s *Shell) promptFloat(label string) (float64, error) {
	for {
		line, err := s.readLine(label)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Your input is invalid!")
			continue
		}
		return f, nil
	}
}
