package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/courtside/internal/client/access"
	"github.com/dmitrijs2005/courtside/internal/client/compare"
	"github.com/dmitrijs2005/courtside/internal/common"
)

// Register creates an account and signs the user in.
func (s *Shell) Register(ctx context.Context) error {
	email, err := GetSimpleText(s.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := s.app.API().Register(ctx, email, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	if _, err := s.app.Session().Login(ctx, email, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Welcome,", email)
	return nil
}

func (s *Shell) Login(ctx context.Context) error {
	email, err := GetSimpleText(s.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := s.app.Session().Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrBadCredentials) {
			printlnFn("Wrong email or password")
		} else {
			printlnFn(err.Error())
		}
		return err
	}

	name := user.DisplayName
	if name == "" {
		name = user.Email
	}
	printlnFn("Welcome back,", name)
	return nil
}

func (s *Shell) Logout(ctx context.Context) error {
	if err := s.app.Session().Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Teams prints the selection grid with live leader info where available.
func (s *Shell) Teams(ctx context.Context) error {
	teams, err := s.app.LoadTeams(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	for _, t := range teams {
		line := fmt.Sprintf("%-4s %s", t.Abbr, t.Name)
		if !t.Eligible {
			line += " [restricted]"
		}
		if info, ok := s.app.Merger().InfoFor(t.Abbr); ok {
			line += fmt.Sprintf("  pts:%s ast:%s reb:%s", info.PointLeader, info.AssistLeader, info.ReboundLeader)
		}
		printlnFn(line)
	}
	return nil
}

// Select runs one comparison selection. Gate refusals turn into prompts
// rather than errors.
func (s *Shell) Select(ctx context.Context, abbr string) error {
	err := s.app.SelectByAbbr(ctx, abbr)
	if err == nil {
		return nil
	}

	var gateErr *compare.GateError
	switch {
	case errors.As(err, &gateErr):
		switch gateErr.Decision {
		case access.PromptRegister:
			printlnFn("This team is restricted. Create an account to view it ('register').")
		case access.PromptDonate:
			printlnFn("This team is restricted. A donation unlocks it.")
		}
	case errors.Is(err, common.ErrNotFound):
		printlnFn("No such team:", abbr, "(run 'teams' first)")
	default:
		printlnFn(err.Error())
	}
	return err
}

// Board prints the two comparison slots.
func (s *Shell) Board(ctx context.Context) error {
	st := s.app.Engine().Snapshot()
	if st.Busy {
		printlnFn("(a selection is loading)")
	}
	printSlot("left", st.Left)
	printSlot("right", st.Right)
	printlnFn("next selection fills the", st.Target.String(), "slot")
	return nil
}

func printSlot(name string, slot compare.SlotState) {
	if slot.TeamID == "" {
		printlnFn(name + ": (empty)")
		return
	}
	printlnFn(fmt.Sprintf("%s: %s", name, slot.Summary.TeamName))
	for _, p := range slot.Summary.Players {
		printlnFn(fmt.Sprintf("  %-20s min:%5.1f pts:%5.1f reb:%4.1f ast:%4.1f",
			p.PlayerCode, p.Minutes, p.PointsAvg, p.ReboundsAvg, p.AssistsAvg))
	}
}

func (s *Shell) Status(ctx context.Context) error {
	sess := s.app.Session().Current()
	switch {
	case sess.Loading:
		printlnFn("Session: loading")
	case !sess.IsAuthenticated:
		printlnFn("Session: not signed in")
	default:
		printlnFn("Signed in as", sess.User.Email)
		if sess.User.Role != "" {
			printlnFn("Role:", sess.User.Role)
		}
		printlnFn("Donated:", strconv.FormatBool(sess.User.Donated))
	}

	if d := s.app.Merger().GameDate(); !d.IsZero() {
		printlnFn("Live data for", d.Format("2006-01-02"))
	}
	return nil
}

// ActiveUsers prints the count of users active in the last hour.
func (s *Shell) ActiveUsers(ctx context.Context) error {
	n, err := s.app.API().ActiveUsers(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Active users:", n)
	return nil
}

func (s *Shell) SearchUser(ctx context.Context, username string) error {
	user, err := s.app.API().SearchUser(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No user named", username)
		} else {
			printlnFn(err.Error())
		}
		return err
	}
	printlnFn(fmt.Sprintf("%s  %s  (id %s)", user.UserName, user.Email, user.ID))
	return nil
}

// Donate records a donation for the named user. The unlock itself arrives
// back through the push channel.
func (s *Shell) Donate(ctx context.Context, username string) error {
	raw, err := GetSimpleText(s.reader, "Enter amount", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		printlnFn("Not a number:", raw)
		return err
	}

	if err := s.app.API().SubmitDonation(ctx, username, amount); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Donation recorded")
	return nil
}
