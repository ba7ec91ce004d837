package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printProducts(w io.Writer, products []*entity.Product) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Price.StringFixed(2), p.Category)
	}

	return errors.WithStack(tw.Flush())
}

func printProduct(w io.Writer, p *entity.Product) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", p.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", p.Title)
	fmt.Fprintf(tw, "Price:\t%s\n", p.Price.StringFixed(2))
	if p.Category != "" {
		fmt.Fprintf(tw, "Category:\t%s\n", p.Category)
	}
	if p.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
	}
	if p.ImageURL != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", p.ImageURL)
	}

	return errors.WithStack(tw.Flush())
}

func printCart(w io.Writer, summary *usecase.CartSummary) error {
	if len(summary.Lines) == 0 {
		_, err := fmt.Fprintln(w, "Your cart is empty")

		return errors.WithStack(err)
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQTY\tSUBTOTAL")
	for _, line := range summary.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			line.ProductID, line.Title, line.Price.StringFixed(2), line.Quantity, line.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(tw, "\t\t\t%d\t%s\n", summary.ItemCount, summary.Total.StringFixed(2))

	return errors.WithStack(tw.Flush())
}

func printOrders(w io.Writer, orders []*entity.Order) error {
	if len(orders) == 0 {
		_, err := fmt.Fprintln(w, "No orders yet")

		return errors.WithStack(err)
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tITEMS\tTOTAL\tSTATUS")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			o.ID, o.CreatedAt.Format(time.DateOnly), len(o.Items), o.TotalAmount.StringFixed(2), o.Status)
	}

	return errors.WithStack(tw.Flush())
}
