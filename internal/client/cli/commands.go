package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/netx"
)

func (a *App) cmdLogin(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email:", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	res, err := a.data.Login(ctx, email, password, "")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !res.Success {
		fmt.Fprintln(a.out, res.Reason)
		return
	}
	fmt.Fprintf(a.out, "welcome, %s\n", res.User.Name)
}

func (a *App) cmdRegister(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name:", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email:", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	mobile, err := GetSimpleText(a.reader, "Mobile (optional):", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	role, err := GetSimpleText(a.reader, "Role (customer/seller):", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	res, err := a.data.Register(ctx, models.Registration{
		Name: name, Email: email, Password: password, Mobile: mobile, Role: models.Role(role),
	})
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintln(a.out, f)
			}
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !res.Success {
		fmt.Fprintln(a.out, res.Reason)
		return
	}
	fmt.Fprintf(a.out, "account created for %s\n", res.User.Email)
}

func (a *App) cmdAddVehicle(ctx context.Context) {
	u := a.currentUser(ctx)
	if u == nil {
		return
	}

	v := models.VehicleRecord{SellerEmail: u.Email, SellerName: u.Name}
	var err error

	if v.Make, err = GetSimpleText(a.reader, "Make:", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if v.Model, err = GetSimpleText(a.reader, "Model:", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	year, err := GetSimpleText(a.reader, "Year:", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if v.Year, err = strconv.Atoi(year); err != nil {
		fmt.Fprintln(a.out, "year must be a number")
		return
	}
	price, err := GetSimpleText(a.reader, "Price:", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if v.Price, err = strconv.ParseFloat(price, 64); err != nil {
		fmt.Fprintln(a.out, "price must be a number")
		return
	}
	if v.Description, err = GetSimpleText(a.reader, "Description (optional):", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	created, err := a.data.AddVehicle(ctx, v)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintln(a.out, f)
			}
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "listed as #%d\n", created.ID)
}

// cmdUpload pushes a media file to object storage via a presigned URL and
// prints the object key to reference in a listing.
func (a *App) cmdUpload(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: upload <path>")
		return
	}
	if a.Mode() != ModeOnline {
		fmt.Fprintln(a.out, "uploads need a server connection")
		return
	}

	file, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	url, key, err := a.gw.MediaUploadURL(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if err := netx.UploadToPresignedURL(ctx, url, file); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "uploaded as %s\n", key)
}

func (a *App) cmdSearchAdd(ctx context.Context) {
	u := a.currentUser(ctx)
	if u == nil {
		return
	}

	s := models.SavedSearch{UserEmail: u.Email}
	var err error

	if s.Name, err = GetSimpleText(a.reader, "Search name:", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if s.Make, err = GetSimpleText(a.reader, "Make (optional):", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if s.Model, err = GetSimpleText(a.reader, "Model (optional):", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	maxPrice, err := GetSimpleText(a.reader, "Max price (optional):", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if maxPrice != "" {
		if s.MaxPrice, err = strconv.ParseFloat(maxPrice, 64); err != nil {
			fmt.Fprintln(a.out, "max price must be a number")
			return
		}
	}

	created, err := a.buyer.CreateSavedSearch(ctx, s)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "saved as #%d\n", created.ID)
}
