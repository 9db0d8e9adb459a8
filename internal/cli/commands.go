package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
)

func (a *App) Users(ctx context.Context) error {
	list, err := a.ledger.ListUsers(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, u := range list {
		fmt.Fprintf(w, "%d\t%s\n", u.ID, u.Name)
	}
	return w.Flush()
}

func (a *App) AddUser(ctx context.Context, name string) error {
	u, err := a.ledger.CreateUser(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added user %d (%s)\n", u.ID, u.Name)
	return nil
}

func (a *App) DelUser(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", arg)
	}
	if err := a.ledger.DeleteUser(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted user %d\n", id)
	return nil
}

func (a *App) Options(ctx context.Context) error {
	list, err := a.ledger.ListOptions(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYMBOL\tKIND\tSTRIKE\tEXPIRATION")
	for _, o := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n", o.ID, o.Symbol, o.Kind, o.Strike, o.Expiration)
	}
	return w.Flush()
}

// AddOption expects args as [symbol, kind, strike, expiration].
func (a *App) AddOption(ctx context.Context, args []string) error {
	strike, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid strike %q", args[2])
	}
	o, err := a.ledger.CreateOption(ctx, args[0], args[1], strike, args[3])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added option %d (%s %s %.2f %s)\n", o.ID, o.Symbol, o.Kind, o.Strike, o.Expiration)
	return nil
}

func (a *App) DelOption(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid option id %q", arg)
	}
	if err := a.ledger.DeleteOption(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted option %d\n", id)
	return nil
}

// Own expects args as [userId, optionId, quantity].
func (a *App) Own(ctx context.Context, args []string) error {
	ids := make([]int64, 3)
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", arg)
		}
		ids[i] = v
	}
	if err := a.ledger.SetOwnership(ctx, ids[0], ids[1], ids[2]); err != nil {
		return err
	}
	if ids[2] <= 0 {
		fmt.Fprintf(a.out, "Cleared ownership (%d, %d)\n", ids[0], ids[1])
	} else {
		fmt.Fprintf(a.out, "Set ownership (%d, %d) to %d\n", ids[0], ids[1], ids[2])
	}
	return nil
}

func (a *App) Owns(ctx context.Context) error {
	list, err := a.ledger.GetOwnerships(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER\tOPTION\tQUANTITY")
	for _, o := range list {
		fmt.Fprintf(w, "%d\t%d\t%d\n", o.UserID, o.OptionID, o.Quantity)
	}
	return w.Flush()
}

// Matrix renders the options × users grid: one column per user, one row per
// option, cell = quantity held.
func (a *App) Matrix(ctx context.Context) error {
	view, err := a.ledger.MatrixView(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "OPTION")
	for _, u := range view.Users {
		fmt.Fprintf(w, "\t%s", u.Name)
	}
	fmt.Fprintln(w)

	for _, row := range view.Rows {
		o := row.Option
		fmt.Fprintf(w, "%s %s %.2f %s", o.Symbol, o.Kind, o.Strike, o.Expiration)
		for _, q := range row.Quantities {
			fmt.Fprintf(w, "\t%d", q)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
