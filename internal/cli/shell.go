package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottokitchen/internal/conversation"
	"github.com/hammamikhairi/ottokitchen/internal/display"
	"github.com/hammamikhairi/ottokitchen/internal/domain"
)

const shellHelp = `Commands:
  report                     cuisine tally and prep statistics
  menu                       list open orders
  tally <cuisine>            count open orders of a cuisine
  serve <dish name>          serve one dish
  release below <minutes>    serve every dish quicker than <minutes>
  release cuisine <cuisine>  serve every dish of a cuisine
  adjust <flags...>          vegetarian vegan gluten-free nut-free low-sodium low-sugar
  history                    served tickets
  help                       this text
  quit                       leave the shell`

// newShellCommand creates the "shell" subcommand: an interactive loop over
// one kitchen, reading commands from stdin.
func newShellCommand() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive kitchen shell",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app, _ []string) error {
			if !quiet {
				a.out.Println(display.RenderBanner())
			}
			return a.runShell(cmd.Context(), cmd.InOrStdin(), conversation.NewKeywordParser(a.log))
		}),
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the banner")
	return cmd
}

func (a *app) runShell(ctx context.Context, in io.Reader, parser domain.IntentParser) error {
	scanner := bufio.NewScanner(in)
	for {
		a.out.PrintPrompt()
		if !scanner.Scan() {
			a.out.Println("")
			return scanner.Err()
		}

		intent, err := parser.Parse(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if intent.Type == domain.IntentQuit {
			a.out.PrintHint("Kitchen closed.")
			return nil
		}
		if err := a.dispatch(intent); err != nil {
			a.out.PrintUrgent(err.Error())
		}
	}
}

// dispatch runs one shell intent against the kitchen.
func (a *app) dispatch(intent *domain.Intent) error {
	a.log.Debug("dispatch %s %q", intent.Type, intent.Payload)

	switch intent.Type {
	case domain.IntentReport:
		a.out.Println(display.RenderReport(a.kitchen.KitchenReport()))

	case domain.IntentMenu:
		a.out.Println(display.RenderMenu(a.kitchen.Items()))

	case domain.IntentTally:
		c, err := parseCuisine(intent.Payload)
		if err != nil {
			return err
		}
		a.out.Println(fmt.Sprintf("%s: %d", c, a.kitchen.TallyCuisineTypes(c)))

	case domain.IntentServe:
		ticket, err := a.serve(intent.Payload)
		if err != nil {
			return err
		}
		a.out.PrintChat(fmt.Sprintf("Served %s.", ticket.DishName))

	case domain.IntentReleaseBelow:
		minutes, err := strconv.Atoi(intent.Payload)
		if err != nil {
			return fmt.Errorf("bad prep time %q", intent.Payload)
		}
		n := a.kitchen.ReleaseDishesBelowPrepTime(minutes)
		a.out.PrintChat(fmt.Sprintf("Released %d dish(es).", n))

	case domain.IntentReleaseCuisine:
		c, err := parseCuisine(intent.Payload)
		if err != nil {
			return err
		}
		n := a.kitchen.ReleaseDishesOfCuisineType(c)
		a.out.PrintChat(fmt.Sprintf("Released %d dish(es).", n))

	case domain.IntentAdjust:
		req, err := conversation.ParseDietaryRequest(strings.Fields(intent.Payload))
		if err != nil {
			return err
		}
		a.kitchen.DietaryAdjustment(req)
		a.out.PrintChat(fmt.Sprintf("Adjusted %d dish(es).", a.kitchen.Size()))

	case domain.IntentHistory:
		a.out.Println(display.RenderTickets(a.ledger.Tickets()))

	case domain.IntentHelp:
		a.out.PrintHint(shellHelp)

	default:
		if intent.Payload != "" {
			return fmt.Errorf("didn't understand %q, type 'help' for commands", intent.Payload)
		}
	}
	return nil
}
