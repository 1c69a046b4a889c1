package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottokitchen/internal/display"
	"github.com/hammamikhairi/ottokitchen/internal/domain"
)

// newReportCommand creates the "report" subcommand that prints the cuisine
// tally and prep statistics.
func newReportCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the cuisine tally and prep-time statistics",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app, _ []string) error {
			r := a.kitchen.KitchenReport()
			if plain {
				_, err := fmt.Fprint(cmd.OutOrStdout(), r.String())
				return err
			}
			a.out.Println(display.RenderReport(r))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print unstyled report text")
	return cmd
}

// newMenuCommand creates the "menu" subcommand that lists every open order.
func newMenuCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:     "menu",
		Aliases: []string{"list"},
		Short:   "List every open order",
		Args:    cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app, _ []string) error {
			printMenu(cmd, a, plain)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print unstyled dish text")
	return cmd
}

func printMenu(cmd *cobra.Command, a *app, plain bool) {
	if plain {
		fmt.Fprint(cmd.OutOrStdout(), a.kitchen.DisplayMenu())
		return
	}
	a.out.Println(display.RenderMenu(a.kitchen.Items()))
}

// newServeCommand creates the "serve" subcommand that serves one dish by name.
func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <dish name>",
		Short: "Serve an open dish by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: runWithApp(func(_ *cobra.Command, a *app, args []string) error {
			ticket, err := a.serve(strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.out.PrintChat(fmt.Sprintf("Served %s.", ticket.DishName))
			a.out.Println(display.RenderTickets([]domain.Ticket{ticket}))
			return nil
		}),
	}
}

// newReleaseCommand creates the "release" subcommand that serves every dish
// matching a prep-time threshold or a cuisine.
func newReleaseCommand() *cobra.Command {
	var (
		below   int
		cuisine string
	)
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Serve every dish under a prep time or of a cuisine",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app, _ []string) error {
			var n int
			switch {
			case cmd.Flags().Changed("below"):
				if below < 0 {
					return fmt.Errorf("--below must not be negative, got %d", below)
				}
				n = a.kitchen.ReleaseDishesBelowPrepTime(below)
			default:
				c, err := parseCuisine(cuisine)
				if err != nil {
					return err
				}
				n = a.kitchen.ReleaseDishesOfCuisineType(c)
			}
			a.out.PrintChat(fmt.Sprintf("Released %d dish(es).", n))
			a.out.Println(display.RenderTickets(a.ledger.Tickets()))
			return nil
		}),
	}
	cmd.Flags().IntVar(&below, "below", 0, "Release dishes that take fewer than this many minutes")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "Release dishes of this cuisine (e.g. ITALIAN)")
	cmd.MarkFlagsMutuallyExclusive("below", "cuisine")
	cmd.MarkFlagsOneRequired("below", "cuisine")
	return cmd
}

var errNoDietaryFlags = errors.New("no dietary flags given")

// newAdjustCommand creates the "adjust" subcommand that applies dietary
// accommodations to every open dish.
func newAdjustCommand() *cobra.Command {
	var (
		req   domain.DietaryRequest
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Apply dietary accommodations to every open dish",
		Args:  cobra.NoArgs,
		RunE: runWithApp(func(cmd *cobra.Command, a *app, _ []string) error {
			if !req.Any() {
				return errNoDietaryFlags
			}
			a.kitchen.DietaryAdjustment(req)
			printMenu(cmd, a, plain)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&req.Vegetarian, "vegetarian", false, "Replace meat with vegetarian proteins")
	cmd.Flags().BoolVar(&req.Vegan, "vegan", false, "Replace animal products")
	cmd.Flags().BoolVar(&req.GlutenFree, "gluten-free", false, "Remove gluten")
	cmd.Flags().BoolVar(&req.NutFree, "nut-free", false, "Remove nuts")
	cmd.Flags().BoolVar(&req.LowSodium, "low-sodium", false, "Reduce spiciness")
	cmd.Flags().BoolVar(&req.LowSugar, "low-sugar", false, "Reduce sweetness")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print unstyled dish text")
	return cmd
}
