package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bokuwaitgel/smart-locker-panel/internal/domain/model"
	"github.com/bokuwaitgel/smart-locker-panel/internal/http/uiutil"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

const (
	descriptionWidth = 40
	cliTimeLayout    = "2006-01-02 15:04"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func runLogin(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "Account email (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*email) == "" {
		return errors.New("--email is required")
	}

	password, err := readPassword(cmdCtx.In)
	if err != nil {
		return err
	}

	// A previous token must not leak into the new session.
	cmdCtx.Token = ""
	s, err := openSession(cmdCtx)
	if err != nil {
		return err
	}
	s.Session.Hydrate(cmdCtx.Ctx)
	if err := s.Auth.Login(cmdCtx.Ctx, s.Session, ports.Credentials{Email: *email, Password: password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	token, err := s.Session.Token(cmdCtx.Ctx)
	if err != nil {
		return err
	}
	return writeln(cmdCtx.Out, token)
}

// readPassword takes the first line of in, so it can be piped.
func readPassword(in io.Reader) (string, error) {
	if in == nil {
		return "", errors.New("password must be provided on stdin")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must be provided on stdin")
	}
	return password, nil
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("whoami")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	snap := s.Session.Snapshot()
	if *asJSON {
		return printJSON(cmdCtx.Out, snap)
	}

	id := snap.User
	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"ID", strconv.FormatInt(id.ID, 10)},
		{"Email", id.Email},
		{"Name", id.DisplayName()},
		{"Role", string(id.Role)},
		{"Admin", strconv.FormatBool(snap.IsAdmin)},
	}
	if id.ExpiresAt > 0 {
		rows = append(rows, [2]string{"Expires (UTC)", time.Unix(id.ExpiresAt, 0).UTC().Format(cliTimeLayout)})
	}
	for _, row := range rows {
		if err := writef(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runStats(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("stats")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	stats, err := s.Panel.Dashboard.Stats(cmdCtx.Ctx)
	if err != nil {
		return s.check(err)
	}
	if *asJSON {
		return printJSON(cmdCtx.Out, stats)
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writef(tw, "Containers:\t%d total\t%d active\n", stats.TotalContainers, stats.ActiveContainers); err != nil {
		return err
	}
	if err := writef(tw, "Lockers:\t%d total\t%d available\t%d occupied\n",
		stats.TotalLockers, stats.AvailableLockers, stats.OccupiedLockers); err != nil {
		return err
	}
	return tw.Flush()
}

func runContainers(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("containers")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	containers, err := s.Panel.Containers.List(cmdCtx.Ctx)
	if err != nil {
		return s.check(err)
	}
	if *asJSON {
		return printJSON(cmdCtx.Out, containers)
	}
	if len(containers) == 0 {
		return writeln(cmdCtx.Out, "No containers.")
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tBOARD\tLOCATION\tSTATUS\tDESCRIPTION"); err != nil {
		return fmt.Errorf("write containers header row: %w", err)
	}
	for _, c := range containers {
		if err := writef(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.BoardID, c.Location, c.Status,
			uiutil.TruncateWithEllipsis(c.Description, descriptionWidth)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runLockers(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("lockers")
	board := fs.String("board", "", "Only show lockers of this board id")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	view, err := s.Panel.Lockers.View(cmdCtx.Ctx, model.LockerFilter{BoardID: *board})
	if err != nil {
		return s.check(err)
	}
	if *asJSON {
		return printJSON(cmdCtx.Out, view.Lockers)
	}
	if len(view.Lockers) == 0 {
		return writeln(cmdCtx.Out, "No lockers.")
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tBOARD\tNUMBER\tSTATUS"); err != nil {
		return fmt.Errorf("write lockers header row: %w", err)
	}
	for _, l := range view.Lockers {
		if err := writef(tw, "%d\t%s\t%s\t%s\n", l.ID, l.BoardID, l.LockerNumber, l.Status); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return writef(cmdCtx.Out, "\n%d shown of %d. %s\n", len(view.Lockers), view.Total, lockerCounts(view.Counts))
}

func lockerCounts(counts map[model.LockerStatus]int) string {
	parts := make([]string, 0, len(model.LockerStatuses))
	for _, st := range model.LockerStatuses {
		parts = append(parts, fmt.Sprintf("%s=%d", st, counts[st]))
	}
	return strings.Join(parts, " ")
}

func runOrders(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("orders")
	board := fs.String("board", "", "Only show orders of this board id")
	status := fs.String("status", "", "Only show orders in this status (or \"all\")")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filter, err := service.ParseOrderFilter(*board, *status)
	if err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	view, err := s.Panel.Orders.View(cmdCtx.Ctx, filter)
	if err != nil {
		return s.check(err)
	}
	if *asJSON {
		return printJSON(cmdCtx.Out, view.Orders)
	}
	if len(view.Orders) == 0 {
		return writeln(cmdCtx.Out, "No orders.")
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tBOARD\tLOCKER\tPICKUP CODE\tSTATUS\tPAYMENT\tMOBILE\tCREATED (UTC)"); err != nil {
		return fmt.Errorf("write orders header row: %w", err)
	}
	for _, d := range view.Orders {
		if err := writef(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.BoardID, d.LockerID, d.PickupCode, d.Status, d.PaymentStatus, d.PickupMobile,
			formatTime(d.CreatedAt)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runOpenLocker(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("open-locker")
	board := fs.String("board", "", "Board id of the container (required)")
	number := fs.String("locker", "", "Locker number on that board (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	msg, err := s.Panel.Lockers.Open(cmdCtx.Ctx, model.OpenLockerRequest{LockerNumber: *number, BoardID: *board})
	if err != nil {
		if checked := s.check(err); errors.Is(checked, errSessionExpired) {
			return checked
		}
		return errors.New(service.UserMessage(err, err.Error()))
	}
	return writeln(cmdCtx.Out, msg)
}

type statusFlags struct {
	ID     int64
	Status string
}

func parseStatusFlags(name string, args []string) (statusFlags, error) {
	fs := newFlagSet(name)
	var opts statusFlags
	fs.Int64Var(&opts.ID, "id", 0, "Record id (required)")
	fs.StringVar(&opts.Status, "status", "", "New status (required)")
	if err := fs.Parse(args); err != nil {
		return statusFlags{}, err
	}
	if opts.ID <= 0 {
		return statusFlags{}, errors.New("--id must be a positive number")
	}
	if strings.TrimSpace(opts.Status) == "" {
		return statusFlags{}, errors.New("--status is required")
	}
	return opts, nil
}

func runSetLockerStatus(cmdCtx *commandContext, args []string) error {
	opts, err := parseStatusFlags("set-locker-status", args)
	if err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	if err := s.Panel.Lockers.SetStatus(cmdCtx.Ctx, opts.ID, opts.Status); err != nil {
		return s.check(err)
	}
	return writef(cmdCtx.Out, "Locker %d status updated to %s.\n", opts.ID, strings.ToUpper(opts.Status))
}

func runSetOrderStatus(cmdCtx *commandContext, args []string) error {
	opts, err := parseStatusFlags("set-order-status", args)
	if err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	if err := s.Panel.Orders.SetStatus(cmdCtx.Ctx, opts.ID, opts.Status); err != nil {
		return s.check(err)
	}
	return writef(cmdCtx.Out, "Order %d status updated to %s.\n", opts.ID, strings.ToUpper(opts.Status))
}

func runSetContainerStatus(cmdCtx *commandContext, args []string) error {
	opts, err := parseStatusFlags("set-container-status", args)
	if err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	if err := s.Panel.Containers.SetStatus(cmdCtx.Ctx, opts.ID, opts.Status); err != nil {
		return s.check(err)
	}
	return writef(cmdCtx.Out, "Container %d status updated to %s.\n", opts.ID, strings.ToUpper(opts.Status))
}

func runBanners(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("banners")
	asJSON := fs.Bool("json", false, "Print JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := openLoggedIn(cmdCtx)
	if err != nil {
		return err
	}
	banners, err := s.Panel.Banners.List(cmdCtx.Ctx)
	if err != nil {
		return s.check(err)
	}
	if *asJSON {
		return printJSON(cmdCtx.Out, banners)
	}
	if len(banners) == 0 {
		return writeln(cmdCtx.Out, "No banners.")
	}

	tw := tabwriter.NewWriter(cmdCtx.Out, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "ID\tTYPE\tACTIVE\tORDER\tURL"); err != nil {
		return fmt.Errorf("write banners header row: %w", err)
	}
	for _, b := range banners {
		if err := writef(tw, "%d\t%s\t%t\t%d\t%s\n", b.ID, b.Type, b.Status, b.SortOrder, b.URL); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(cliTimeLayout)
}
