package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-football-stats/internal/dashboard"
	"github.com/pable/go-football-stats/internal/report"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long: `Load the dataset once and explore it interactively. The session keeps a
selection (team, tournaments, opponents, years) that every view uses; change it
with 'set' and type 'help' for available commands.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// shellSession is the selection of one REPL session.
type shellSession struct {
	b   *dashboard.Builder
	sel dashboard.Selection
}

func runShell(_ *cobra.Command, _ []string) error {
	b, err := loadBuilder()
	if err != nil {
		return err
	}
	s := &shellSession{b: b}

	cGreeting.Println("footstats shell")
	cMuted.Printf("%d teams loaded, default %s. type 'help' or 'exit'\n", len(b.Store.Teams()), b.DefaultTeam())
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print(s.promptTeam())
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "teams":
			report.PrintTeams(os.Stdout, b.Store.Teams(), b.DefaultTeam())
		case "options":
			s.options()
		case "set":
			s.set(rest)
		case "reset":
			s.sel = dashboard.Selection{}
			cMuted.Println("selection cleared")
		case "show", "dashboard":
			s.view(func(d *dashboard.Dashboard) { report.PrintDashboard(os.Stdout, d) })
		case "stats":
			s.view(func(d *dashboard.Dashboard) {
				report.PrintSelection(os.Stdout, d)
				report.PrintStats(os.Stdout, d.Stats, d.Shootouts)
			})
		case "scorers":
			s.view(func(d *dashboard.Dashboard) { report.PrintTopScorers(os.Stdout, d.TopScorers) })
		case "trend":
			s.view(func(d *dashboard.Dashboard) { report.PrintYearTrend(os.Stdout, d.Trend) })
		case "cups":
			s.view(func(d *dashboard.Dashboard) { report.PrintTournamentCounts(os.Stdout, d.Tournaments) })
		case "recent":
			s.view(func(d *dashboard.Dashboard) { report.PrintRecentMatches(os.Stdout, d.Recent) })
		case "countries":
			s.view(func(d *dashboard.Dashboard) { report.PrintCountryWinRatios(os.Stdout, d.Countries) })
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"teams", "list every team"},
		{"options", "tournaments, opponents and years for the current team"},
		{"set team <name>[, <name>...]", "choose the team (several pool their matches)"},
		{"set tournaments <a>, <b> | all | none", "keep only these tournaments"},
		{"set opponents <a>, <b> | all", "keep only matches against these teams"},
		{"set years <from> <to> | default", "restrict to a year range"},
		{"reset", "clear the selection"},
		{"show", "full dashboard"},
		{"stats | scorers | trend", "single views"},
		{"cups | recent | countries", "matches per tournament, last matches, host countries"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-40s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func (s *shellSession) promptTeam() string {
	if len(s.sel.Teams) > 0 {
		return strings.Join(s.sel.Teams, "+")
	}
	return s.b.DefaultTeam()
}

func (s *shellSession) set(args string) {
	field, value, _ := strings.Cut(args, " ")
	value = strings.TrimSpace(value)

	switch field {
	case "team", "teams":
		teams := splitList(value)
		if len(teams) == 0 {
			cError.Fprintln(os.Stderr, "usage: set team <name>[, <name>...]")
			return
		}
		for _, t := range teams {
			if !s.b.Store.HasTeam(t) {
				cError.Fprintf(os.Stderr, "team %q is not in the dataset\n", t)
				return
			}
		}
		// A new team has different options, so the rest of the selection no
		// longer applies.
		s.sel = dashboard.Selection{Teams: teams}
	case "tournament", "tournaments":
		switch strings.ToLower(value) {
		case "", "all":
			s.sel.Tournaments = nil
		case "none":
			s.sel.Tournaments = []string{}
		default:
			s.sel.Tournaments = splitList(value)
		}
	case "opponent", "opponents":
		if value == "" || strings.EqualFold(value, "all") {
			s.sel.Opponents = nil
		} else {
			s.sel.Opponents = splitList(value)
		}
	case "years", "year":
		if value == "" || strings.EqualFold(value, "default") {
			s.sel.From, s.sel.To = 0, 0
			break
		}
		parts := strings.Fields(value)
		if len(parts) != 2 {
			cError.Fprintln(os.Stderr, "usage: set years <from> <to>")
			return
		}
		from, err1 := strconv.Atoi(parts[0])
		to, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			cError.Fprintln(os.Stderr, "years must be numbers")
			return
		}
		s.sel.From, s.sel.To = from, to
	default:
		cError.Fprintln(os.Stderr, "usage: set team|tournaments|opponents|years <value>")
		return
	}
	s.view(func(d *dashboard.Dashboard) {
		report.PrintSelection(os.Stdout, d)
	})
}

func (s *shellSession) options() {
	_, opts, err := s.b.Resolve(s.sel)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintOptions(os.Stdout, opts, s.b.DefaultYears(opts))
}

func (s *shellSession) view(print func(*dashboard.Dashboard)) {
	d, err := s.b.Build(s.sel)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	print(d)
}
