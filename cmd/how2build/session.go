package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/repairguide/internal/chat"
	"github.com/Faultbox/repairguide/internal/engine/scene"
	"github.com/Faultbox/repairguide/internal/relay"
	"github.com/Faultbox/repairguide/internal/viewer"
	"github.com/Faultbox/repairguide/pkg/schema"
)

// sender delivers a chat message and returns the reply. Failed requests still
// return a reply carrying a user-facing message.
type sender interface {
	SendMessage(ctx context.Context, text string) (schema.ChatResponse, error)
}

// localRelay answers in-process without an HTTP hop.
type localRelay struct {
	svc *relay.Service
}

func (l *localRelay) SendMessage(ctx context.Context, text string) (schema.ChatResponse, error) {
	resp, err := l.svc.Chat(ctx, text)
	if err != nil {
		msg := chat.MsgGeneric
		if errors.Is(err, relay.ErrNoAPIKey) {
			msg = "API key not configured. Set OPENAI_API_KEY or run with -mock."
		}
		return schema.ChatResponse{Message: msg, Error: true}, err
	}
	return resp, nil
}

type session struct {
	viewer *viewer.Viewer
	chat   sender
	out    io.Writer
}

const helpText = `Describe what is broken, e.g. "my tap is dripping".
Commands:
  next, n        next step
  prev, p        previous step
  step <N>       jump to step N
  steps          list all steps
  show           print the model
  orbit <x> <y>  rotate the camera
  zoom <d>       zoom in (negative zooms out)
  view           print the camera, "view reset" refits it
  help           this text
  quit           exit`

func (s *session) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "How2Build. Type help for commands.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if quit := s.handle(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// handle runs one input line and reports whether the session should end.
func (s *session) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	fields := strings.Fields(line)

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "next", "n":
		s.move(s.viewer.Next(), "Already at the last step.")
	case "prev", "previous", "p":
		s.move(s.viewer.Previous(), "Already at the first step.")
	case "step":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Usage: step <N>")
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Fprintln(s.out, "Usage: step <N>")
			return false
		}
		total := s.viewer.Info().Total
		s.move(s.viewer.SetStep(n-1), fmt.Sprintf("No step %d (there are %d).", n, total))
	case "steps":
		s.printSteps()
	case "show":
		s.printFrame()
	case "orbit":
		d, ok := parseFloats(fields[1:], 2)
		if !ok {
			fmt.Fprintln(s.out, "Usage: orbit <x> <y>")
			return false
		}
		s.viewer.OrbitCamera(d[0], d[1])
		s.printCamera()
	case "zoom":
		d, ok := parseFloats(fields[1:], 1)
		if !ok {
			fmt.Fprintln(s.out, "Usage: zoom <d>")
			return false
		}
		s.viewer.ZoomCamera(d[0])
		s.printCamera()
	case "view":
		if len(fields) == 2 && strings.EqualFold(fields[1], "reset") {
			s.viewer.ResetCamera()
		}
		s.printCamera()
	default:
		s.send(ctx, line)
	}
	return false
}

func (s *session) send(ctx context.Context, text string) {
	resp, _ := s.chat.SendMessage(ctx, text)
	fmt.Fprintln(s.out, resp.Message)
	if resp.Error {
		return
	}
	// Accept only fails on per-solid material errors, which are already logged.
	_ = s.viewer.Accept(resp)
	if resp.HasModel() || len(resp.Steps) > 0 {
		s.printStep()
		s.printFrame()
	}
}

func (s *session) move(ok bool, reject string) {
	if !ok {
		if !s.viewer.Info().HasSteps() {
			fmt.Fprintln(s.out, "No repair steps yet. Ask a question first.")
			return
		}
		fmt.Fprintln(s.out, reject)
		return
	}
	s.printStep()
	s.printFrame()
}

func (s *session) printStep() {
	info := s.viewer.Info()
	if !info.HasSteps() {
		return
	}
	fmt.Fprintf(s.out, "\nStep %d/%d: %s\n", info.Index+1, info.Total, info.Title)
	if info.Description != "" {
		fmt.Fprintf(s.out, "  %s\n", info.Description)
	}
	var nav []string
	if !info.IsFirst {
		nav = append(nav, "prev")
	}
	if !info.IsLast {
		nav = append(nav, "next")
	}
	if len(nav) > 0 {
		fmt.Fprintf(s.out, "  [%s]\n", strings.Join(nav, " | "))
	}
}

func (s *session) printSteps() {
	steps := s.viewer.Steps()
	if len(steps) == 0 {
		fmt.Fprintln(s.out, "No repair steps yet.")
		return
	}
	current := s.viewer.Info().Index
	for i, st := range steps {
		marker := " "
		if i == current {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %d. %s\n", marker, i+1, st.Title)
	}
}

func (s *session) printCamera() {
	c := s.viewer.Camera()
	pos := c.Position()
	fmt.Fprintf(s.out, "Camera at (%.2f, %.2f, %.2f) looking at (%.2f, %.2f, %.2f)\n",
		pos.X, pos.Y, pos.Z, c.Target.X, c.Target.Y, c.Target.Z)
	st := s.viewer.Stage()
	sun := st.Sun.Position
	fmt.Fprintf(s.out, "Stage: background %s, ambient %.2f, sun %.2f from (%.0f, %.0f, %.0f)\n",
		st.Background, st.Ambient.Intensity, st.Sun.Intensity, sun.X, sun.Y, sun.Z)
}

func parseFloats(args []string, n int) ([]float32, bool) {
	if len(args) != n {
		return nil, false
	}
	out := make([]float32, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, false
		}
		out[i] = float32(f)
	}
	return out, true
}

func (s *session) printFrame() {
	fmt.Fprint(s.out, describe(s.viewer.Snapshot()))
}

// describe renders a frame as text, one solid per line.
func describe(f scene.Frame) string {
	if f.Empty() {
		return "No model loaded.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nModel: %s  rotation (%.2f, %.2f, %.2f)\n", f.ObjectType, f.Rotation.X, f.Rotation.Y, f.Rotation.Z)
	for _, s := range f.Solids {
		pos := s.World.Translation()
		state := "shown"
		if !s.Visible {
			state = "hidden"
		}
		mark := " "
		if s.Highlighted {
			mark = "*"
		}
		fmt.Fprintf(&b, " %s %-14s %-8s %s  at (%.2f, %.2f, %.2f)  %s\n",
			mark, s.Name, s.Shape, s.Color, pos.X, pos.Y, pos.Z, state)
	}
	return b.String()
}
