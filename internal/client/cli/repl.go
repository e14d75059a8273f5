package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wheelmarket/wheelmarket/internal/listing"
	"github.com/wheelmarket/wheelmarket/internal/models"
)

const helpText = `Commands:
  login            sign in
  register         create an account
  logout           drop the session
  whoami           show the signed-in user
  vehicles         list vehicles
  add              create a listing
  delete <id>      remove a listing
  wish <id>        toggle a vehicle on the wishlist
  wishlist         show the wishlist
  drops            check wishlist price drops
  searches         list saved searches
  search-add       create a saved search
  upload <path>    upload a media file for a listing
  audit            report listings with unknown seller emails
  sync             reconcile local changes with the server
  mode             show connectivity mode
  help             this text
  quit             exit`

func (a *App) repl(ctx context.Context) error {
	fmt.Fprintln(a.out, "wheelmarket client — type 'help' for commands")

	for {
		line, err := GetSimpleText(a.reader, "", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, helpText)
		case "login":
			a.cmdLogin(ctx)
		case "register":
			a.cmdRegister(ctx)
		case "logout":
			a.data.Logout(ctx)
			fmt.Fprintln(a.out, "signed out")
		case "whoami":
			a.cmdWhoami(ctx)
		case "vehicles":
			a.cmdVehicles(ctx)
		case "add":
			a.cmdAddVehicle(ctx)
		case "delete":
			a.cmdDeleteVehicle(ctx, args)
		case "wish":
			a.cmdToggleWishlist(ctx, args)
		case "wishlist":
			a.cmdWishlist(ctx)
		case "drops":
			a.cmdPriceDrops(ctx)
		case "searches":
			a.cmdSearches(ctx)
		case "search-add":
			a.cmdSearchAdd(ctx)
		case "upload":
			a.cmdUpload(ctx, args)
		case "audit":
			a.cmdAudit(ctx)
		case "sync":
			if err := a.data.SyncWhenOnline(ctx, a.Mode() == ModeOnline); err != nil {
				fmt.Fprintf(a.out, "sync failed: %v\n", err)
			} else {
				fmt.Fprintln(a.out, "sync done")
			}
		case "mode":
			fmt.Fprintln(a.out, a.Mode())
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (a *App) currentUser(ctx context.Context) *models.UserRecord {
	u := a.data.CurrentUser(ctx)
	if u == nil {
		fmt.Fprintln(a.out, "not signed in")
	}
	return u
}

func (a *App) cmdWhoami(ctx context.Context) {
	if u := a.currentUser(ctx); u != nil {
		fmt.Fprintf(a.out, "%s <%s> (%s)\n", u.Name, u.Email, u.Role)
	}
}

func (a *App) cmdVehicles(ctx context.Context) {
	vehicles, err := a.data.GetVehicles(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	for _, v := range vehicles {
		fmt.Fprintf(a.out, "#%d %d %s %s — %.0f (%s)\n", v.ID, v.Year, v.Make, v.Model, v.Price, v.ListingStatus)
	}
	fmt.Fprintf(a.out, "%d vehicle(s)\n", len(vehicles))
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one id argument")
	}
	return strconv.ParseInt(args[0], 10, 64)
}

func (a *App) cmdDeleteVehicle(ctx context.Context, args []string) {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if err := a.data.DeleteVehicle(ctx, id); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "deleted")
}

func (a *App) cmdToggleWishlist(ctx context.Context, args []string) {
	u := a.currentUser(ctx)
	if u == nil {
		return
	}
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	ids := a.data.ToggleWishlist(ctx, u.Email, id)
	fmt.Fprintf(a.out, "wishlist: %v\n", ids)
}

func (a *App) cmdWishlist(ctx context.Context) {
	u := a.currentUser(ctx)
	if u == nil {
		return
	}
	fmt.Fprintf(a.out, "wishlist: %v\n", a.data.Wishlist(ctx, u.Email))
}

func (a *App) cmdPriceDrops(ctx context.Context) {
	u := a.currentUser(ctx)
	if u == nil {
		return
	}
	vehicles, err := a.data.GetVehicles(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	drops := a.buyer.CheckPriceDrops(ctx, a.data.Wishlist(ctx, u.Email), vehicles)
	if len(drops) == 0 {
		fmt.Fprintln(a.out, "no price drops")
		return
	}
	for _, d := range drops {
		fmt.Fprintf(a.out, "#%d %s %s: %.0f -> %.0f\n",
			d.Vehicle.ID, d.Vehicle.Make, d.Vehicle.Model, d.OldPrice, d.NewPrice)
	}
}

func (a *App) cmdSearches(ctx context.Context) {
	u := a.currentUser(ctx)
	if u == nil {
		return
	}
	for _, s := range a.buyer.SavedSearches(ctx, u.Email) {
		fmt.Fprintf(a.out, "#%d %s make=%q model=%q price=[%.0f..%.0f]\n",
			s.ID, s.Name, s.Make, s.Model, s.MinPrice, s.MaxPrice)
	}
}

func (a *App) cmdAudit(ctx context.Context) {
	vehicles, err := a.data.GetVehicles(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	users, err := a.data.GetUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	dangling := listing.AuditSellerReferences(vehicles, users)
	if len(dangling) == 0 {
		fmt.Fprintln(a.out, "all seller references resolve")
		return
	}
	fmt.Fprintf(a.out, "listings with unknown sellers: %v\n", dangling)
}
