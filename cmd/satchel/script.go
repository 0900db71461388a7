package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradenaw/juniper/iterator"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/bradenaw/satchel"
	"github.com/bradenaw/satchel/list"
)

var (
	errUnknownKind = errors.New("unknown kind")
	errUnknownOp   = errors.New("unknown op")
	errBadArgument = errors.New("bad argument")
)

// Script is a sequence of operations to run against one structure.
type Script struct {
	Kind string   `yaml:"kind"`
	Ops  []string `yaml:"ops"`
}

func loadScript(r io.Reader) (Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Script{}, fmt.Errorf("decoding script: %w", err)
	}
	return s, nil
}

// readScript loads the script at path, or from stdin if path is "-". The file is closed before
// readScript returns.
func readScript(path string, stdin io.Reader) (Script, error) {
	if path == "-" {
		return loadScript(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("opening script: %w", err)
	}
	s, err := loadScript(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing script: %w", closeErr)
	}
	return s, err
}

// result is the outcome of one op. OK is false when a pop or peek found nothing. NoValue is set
// for ops that succeed without producing anything, like clear.
type result struct {
	Op      string
	Value   int
	OK      bool
	NoValue bool
	Items   []int
}

type opFunc struct {
	takesArg bool
	do       func(arg int) result
}

func replay(s Script, logger *zerolog.Logger) ([]result, error) {
	ops, err := opsFor(s.Kind)
	if err != nil {
		return nil, err
	}

	results := make([]result, 0, len(s.Ops))
	for i, line := range s.Ops {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		op, ok := ops[fields[0]]
		if !ok {
			return results, fmt.Errorf("op %d: %w %q for %s", i, errUnknownOp, fields[0], s.Kind)
		}

		var arg int
		if op.takesArg {
			if len(fields) != 2 {
				return results, fmt.Errorf("op %d: %w: %s takes one integer", i, errBadArgument, fields[0])
			}
			arg, err = strconv.Atoi(fields[1])
			if err != nil {
				return results, fmt.Errorf("op %d: %w: %v", i, errBadArgument, err)
			}
		} else if len(fields) != 1 {
			return results, fmt.Errorf("op %d: %w: %s takes no argument", i, errBadArgument, fields[0])
		}

		r := op.do(arg)
		r.Op = line
		results = append(results, r)
		logResult(logger, i, r)
	}
	return results, nil
}

func logResult(logger *zerolog.Logger, i int, r result) {
	ev := logger.Info().Int("step", i).Str("op", r.Op)
	switch {
	case r.Items != nil:
		ev = ev.Ints("items", r.Items)
	case r.NoValue:
	case r.OK:
		ev = ev.Int("value", r.Value)
	default:
		ev = ev.Bool("empty", true)
	}
	ev.Msg("applied")
}

func opsFor(kind string) (map[string]opFunc, error) {
	switch kind {
	case "list":
		l := list.New[int]()
		return map[string]opFunc{
			"push_back":  push(l.PushBack),
			"push_front": push(l.PushFront),
			"pop_back":   pop(l.PopBack),
			"pop_front":  pop(l.PopFront),
			"clear":      {do: func(int) result { l.Clear(); return result{OK: true, NoValue: true} }},
			"len":        length(l.Len),
			"iter":       items(l.Iter),
		}, nil
	case "stack":
		s := satchel.NewStack[int]()
		return map[string]opFunc{
			"push": push(s.Push),
			"pop":  pop(s.Pop),
			"peek": pop(s.Peek),
			"len":  length(s.Len),
			"iter": items(s.Iter),
		}, nil
	case "queue":
		q := satchel.NewQueue[int]()
		return map[string]opFunc{
			"enqueue": push(q.Enqueue),
			"dequeue": pop(q.Dequeue),
			"peek":    pop(q.Peek),
			"len":     length(q.Len),
			"iter":    items(q.Iter),
		}, nil
	case "bag":
		b := satchel.NewBag[int]()
		return map[string]opFunc{
			"add":  push(b.Add),
			"len":  length(b.Len),
			"iter": items(b.Iter),
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownKind, kind)
	}
}

func push(f func(int)) opFunc {
	return opFunc{takesArg: true, do: func(arg int) result {
		f(arg)
		return result{Value: arg, OK: true}
	}}
}

func pop(f func() (int, bool)) opFunc {
	return opFunc{do: func(int) result {
		v, ok := f()
		return result{Value: v, OK: ok}
	}}
}

func length(f func() int) opFunc {
	return opFunc{do: func(int) result { return result{Value: f(), OK: true} }}
}

func items(f func() iterator.Iterator[int]) opFunc {
	return opFunc{do: func(int) result {
		all := iterator.Collect(f())
		if all == nil {
			all = []int{}
		}
		return result{Items: all, OK: true}
	}}
}
