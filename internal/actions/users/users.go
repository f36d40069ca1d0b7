// Package users implements the user management commands.
package users

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/footprint-tools/dispatch/internal/dispatchers"
	"github.com/footprint-tools/dispatch/internal/domain"
	"github.com/footprint-tools/dispatch/internal/usage"
)

// Binding targets of the user commands.
const (
	ArgName  = "name"
	ArgAdmin = "admin"
	ArgAge   = "age"
	ArgFrom  = "from"
	ArgTo    = "to"
	ArgLimit = "limit"
)

func Create(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments) error {
		return create(ctx, args, deps)
	}
}

func create(ctx context.Context, args *dispatchers.Arguments, deps Deps) error {
	if args.Int(ArgAge) < 0 {
		return usage.InvalidIntegerValue("user create", ArgAge, fmt.Sprint(args.Int(ArgAge)))
	}

	user := domain.User{
		ID:        deps.NewID(),
		Name:      args.String(ArgName),
		Admin:     args.Bool(ArgAdmin),
		Age:       args.Int(ArgAge),
		CreatedAt: deps.Now(),
	}
	if err := deps.Users.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	role := "user"
	if user.Admin {
		role = "admin"
	}
	_, _ = deps.Out.Printf("%s %s (%s)\n", deps.Styler.Success("created"), user.Name, role)
	return nil
}

func Remove(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments) error {
		return remove(ctx, args, deps)
	}
}

func remove(ctx context.Context, args *dispatchers.Arguments, deps Deps) error {
	name := args.String(ArgName)
	if err := deps.Users.RemoveUser(ctx, name); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	_, _ = deps.Out.Printf("%s %s\n", deps.Styler.Success("removed"), name)
	return nil
}

func Rename(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments) error {
		return rename(ctx, args, deps)
	}
}

func rename(ctx context.Context, args *dispatchers.Arguments, deps Deps) error {
	from, to := args.String(ArgFrom), args.String(ArgTo)
	if from == to {
		return nil
	}
	if err := deps.Users.RenameUser(ctx, from, to); err != nil {
		return fmt.Errorf("rename user: %w", err)
	}
	_, _ = deps.Out.Printf("%s %s -> %s\n", deps.Styler.Success("renamed"), from, to)
	return nil
}

func List(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments) error {
		return list(ctx, args, deps)
	}
}

func list(ctx context.Context, args *dispatchers.Arguments, deps Deps) error {
	if args.Int(ArgLimit) < 0 {
		return usage.InvalidIntegerValue("list", ArgLimit, fmt.Sprint(args.Int(ArgLimit)))
	}

	users, err := deps.Users.ListUsers(ctx, domain.UserFilter{
		AdminOnly: args.Bool(ArgAdmin),
		Limit:     args.Int(ArgLimit),
	})
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if len(users) == 0 {
		_, _ = deps.Out.Println(deps.Styler.Muted("no users"))
		return nil
	}

	cell := lipgloss.NewStyle().PaddingRight(1)
	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers("NAME", "ADMIN", "AGE", "CREATED").
		StyleFunc(func(_, _ int) lipgloss.Style { return cell })
	for _, u := range users {
		tbl.Row(u.Name, strconv.FormatBool(u.Admin), strconv.Itoa(u.Age), u.CreatedAt.Format("2006-01-02"))
	}
	_, err = deps.Out.Println(tbl.Render())
	return err
}

