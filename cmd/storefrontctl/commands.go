package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

type action func(ctx context.Context, cli *client, args []string) error

type command struct {
	name    string
	usage   string
	summary string
	// setup registers the command's flags and returns what runs once they are parsed.
	setup func(fs *flag.FlagSet) action
}

var commands = []command{
	{name: "products", usage: "[-q text] [-category name] [-min price] [-max price]", summary: "Search the catalog", setup: setupProducts},
	{name: "product", usage: "<id>", summary: "Show one product", setup: setupProduct},
	{name: "login", usage: "-email address -password secret", summary: "Log in", setup: setupLogin},
	{name: "register", usage: "-name name -email address -password secret [-role user|admin]", summary: "Create an account", setup: setupRegister},
	{name: "logout", usage: "[-yes]", summary: "Log out and clear the cart", setup: setupLogout},
	{name: "cart", usage: "", summary: "Show the cart", setup: setupCart},
	{name: "add", usage: "[-qty n] <product-id>", summary: "Add a product to the cart", setup: setupAdd},
	{name: "remove", usage: "<product-id>", summary: "Remove a cart line", setup: setupRemove},
	{name: "qty", usage: "<product-id> <quantity>", summary: "Set a cart line's quantity", setup: setupQty},
	{name: "clear", usage: "", summary: "Empty the cart", setup: setupClear},
	{name: "checkout", usage: "-payment-method pm_... [-name cardholder] [-receipt dir]", summary: "Pay for the cart", setup: setupCheckout},
	{name: "orders", usage: "", summary: "List my orders", setup: setupOrders},
	{name: "receipt", usage: "[-out dir] [order-id]", summary: "Download a PDF receipt", setup: setupReceipt},
	{name: "admin-list", usage: "", summary: "List products (admin)", setup: setupAdminList},
	{name: "admin-upload", usage: "<image-file>", summary: "Upload a product image (admin)", setup: setupAdminUpload},
	{name: "admin-create", usage: "-title t -price p -image url [-description d] [-category c]", summary: "Create a product (admin)", setup: setupAdminCreate},
	{name: "admin-update", usage: "-title t -price p -image url [-description d] [-category c] <id>", summary: "Update a product (admin)", setup: setupAdminUpdate},
	{name: "admin-delete", usage: "[-yes] <id>", summary: "Delete a product (admin)", setup: setupAdminDelete},
}

func lookupCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}

	return command{}, false
}

func argAt(args []string, i int, what string) (string, error) {
	if len(args) <= i || args[i] == "" {
		return "", domainerrors.NewValidationError("%s is required", what)
	}

	return args[i], nil
}

func setupProducts(fs *flag.FlagSet) action {
	q := fs.String("q", "", "Text to search for")
	category := fs.String("category", "", "Category filter")
	minPrice := fs.String("min", "", "Minimum price")
	maxPrice := fs.String("max", "", "Maximum price")

	return func(ctx context.Context, cli *client, _ []string) error {
		products, err := cli.catalog.Search(ctx, usecase.SearchInput{
			Q:        *q,
			Category: *category,
			MinPrice: *minPrice,
			MaxPrice: *maxPrice,
		})
		if err != nil {
			return err
		}

		return printProducts(cli.out, products)
	}
}

func setupProduct(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, args []string) error {
		id, err := argAt(args, 0, "product id")
		if err != nil {
			return err
		}

		product, err := cli.catalog.Product(ctx, id)
		if err != nil {
			return err
		}

		return printProduct(cli.out, product)
	}
}

func setupLogin(fs *flag.FlagSet) action {
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")

	return func(ctx context.Context, cli *client, _ []string) error {
		identity, err := cli.auth.Login(ctx, usecase.LoginInput{Email: *email, Password: *password})
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cli.out, "Logged in as %s (%s)\n", identity.Name, identity.Role)

		return err
	}
}

func setupRegister(fs *flag.FlagSet) action {
	name := fs.String("name", "", "Display name")
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	role := fs.String("role", "", "Role: user (default) or admin")

	return func(ctx context.Context, cli *client, _ []string) error {
		identity, err := cli.auth.Register(ctx, usecase.RegisterInput{
			Name:     *name,
			Email:    *email,
			Password: *password,
			Role:     entity.Role(*role),
		})
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cli.out, "Registered %s (%s)\n", identity.Email, identity.Role)

		return err
	}
}

func setupLogout(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, _ []string) error {
		done, err := cli.auth.Logout(ctx, !cli.yes)
		if err != nil {
			return err
		}
		if !done {
			_, err = fmt.Fprintln(cli.out, "Still logged in")

			return err
		}

		_, err = fmt.Fprintln(cli.out, "Logged out")

		return err
	}
}

func setupCart(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, _ []string) error {
		summary, err := cli.cart.GetCart(ctx)
		if err != nil {
			return err
		}

		return printCart(cli.out, summary)
	}
}

func setupAdd(fs *flag.FlagSet) action {
	qty := fs.Int("qty", 1, "Quantity to add")

	return func(ctx context.Context, cli *client, args []string) error {
		id, err := argAt(args, 0, "product id")
		if err != nil {
			return err
		}

		product, err := cli.catalog.Product(ctx, id)
		if err != nil {
			return err
		}

		cart, err := cli.cart.AddToCart(ctx, product, *qty)
		if err != nil {
			return err
		}

		return printCart(cli.out, usecase.NewCartSummary(cart))
	}
}

func setupRemove(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, args []string) error {
		id, err := argAt(args, 0, "product id")
		if err != nil {
			return err
		}

		cart, err := cli.cart.RemoveFromCart(ctx, id)
		if err != nil {
			return err
		}

		return printCart(cli.out, usecase.NewCartSummary(cart))
	}
}

func setupQty(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, args []string) error {
		id, err := argAt(args, 0, "product id")
		if err != nil {
			return err
		}
		raw, err := argAt(args, 1, "quantity")
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.NewValidationError("quantity must be a whole number")
		}

		cart, err := cli.cart.UpdateQuantity(ctx, id, quantity)
		if err != nil {
			return err
		}

		return printCart(cli.out, usecase.NewCartSummary(cart))
	}
}

func setupClear(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, _ []string) error {
		if err := cli.cart.ClearCart(ctx); err != nil {
			return err
		}

		_, err := fmt.Fprintln(cli.out, "Cart cleared")

		return err
	}
}

func setupCheckout(fs *flag.FlagSet) action {
	paymentMethod := fs.String("payment-method", "", "Processor card token, e.g. pm_card_visa")
	cardholder := fs.String("name", "", "Cardholder name")
	receiptDir := fs.String("receipt", "", "Save the PDF receipt into this directory")

	return func(ctx context.Context, cli *client, _ []string) error {
		session, err := cli.checkout.Begin(ctx)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(cli.out, "Paying %s %s for %d item(s)\n",
			session.CartSnapshot.Total().StringFixed(2), session.Currency, session.CartSnapshot.ItemCount()); err != nil {
			return errors.WithStack(err)
		}

		card := entity.CardDetails{PaymentMethod: *paymentMethod, CardholderName: *cardholder}
		if err := cli.checkout.SubmitPayment(ctx, session, card); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(cli.out, "Payment successful, order %s\n", session.OrderID); err != nil {
			return errors.WithStack(err)
		}

		if *receiptDir == "" {
			return nil
		}

		return saveReceipt(ctx, cli, session.OrderID, *receiptDir)
	}
}

func setupOrders(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, _ []string) error {
		orders, err := cli.orders.MyOrders(ctx)
		if err != nil {
			return err
		}

		return printOrders(cli.out, orders)
	}
}

func setupReceipt(fs *flag.FlagSet) action {
	out := fs.String("out", ".", "Directory to write the PDF into")

	return func(ctx context.Context, cli *client, args []string) error {
		orderID := ""
		if len(args) > 0 {
			orderID = args[0]
		}

		return saveReceipt(ctx, cli, orderID, *out)
	}
}

func saveReceipt(ctx context.Context, cli *client, orderID, dir string) error {
	receipt, err := cli.orders.Receipt(ctx, orderID)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, receipt.FileName)
	if err := os.WriteFile(path, receipt.PDF, 0o644); err != nil {
		return errors.Wrap(err, "failed to write receipt")
	}

	_, err = fmt.Fprintf(cli.out, "Receipt saved to %s (archived at %s)\n", path, receipt.Location)

	return err
}

func setupAdminList(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, _ []string) error {
		products, err := cli.admin.ListProducts(ctx)
		if err != nil {
			return err
		}

		return printProducts(cli.out, products)
	}
}

func setupAdminUpload(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, args []string) error {
		path, err := argAt(args, 0, "image file")
		if err != nil {
			return err
		}

		file, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "failed to open image")
		}
		defer file.Close()

		imageURL, err := cli.admin.UploadImage(ctx, filepath.Base(path), file)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cli.out, imageURL)

		return err
	}
}

func productFlags(fs *flag.FlagSet) func() usecase.ProductInput {
	title := fs.String("title", "", "Product title")
	description := fs.String("description", "", "Product description")
	price := fs.String("price", "", "Product price")
	category := fs.String("category", "", "Product category")
	image := fs.String("image", "", "Image URL returned by admin-upload")

	return func() usecase.ProductInput {
		return usecase.ProductInput{
			Title:       *title,
			Description: *description,
			Price:       *price,
			Category:    *category,
			ImageURL:    *image,
		}
	}
}

func setupAdminCreate(fs *flag.FlagSet) action {
	input := productFlags(fs)

	return func(ctx context.Context, cli *client, _ []string) error {
		product, err := cli.admin.CreateProduct(ctx, input())
		if err != nil {
			return err
		}

		return printProduct(cli.out, product)
	}
}

func setupAdminUpdate(fs *flag.FlagSet) action {
	input := productFlags(fs)

	return func(ctx context.Context, cli *client, args []string) error {
		id, err := argAt(args, 0, "product id")
		if err != nil {
			return err
		}

		product, err := cli.admin.UpdateProduct(ctx, id, input())
		if err != nil {
			return err
		}

		return printProduct(cli.out, product)
	}
}

func setupAdminDelete(*flag.FlagSet) action {
	return func(ctx context.Context, cli *client, args []string) error {
		id, err := argAt(args, 0, "product id")
		if err != nil {
			return err
		}

		deleted, err := cli.admin.DeleteProduct(ctx, id, !cli.yes)
		if err != nil {
			return err
		}
		if !deleted {
			_, err = fmt.Fprintln(cli.out, "Product kept")

			return err
		}

		_, err = fmt.Fprintf(cli.out, "Deleted %s\n", id)

		return err
	}
}
