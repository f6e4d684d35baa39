// Package cli implements the interactive console menu. It is a thin
// surface: every decision about rooms and reservations is delegated to
// the reservation service, and the menu only translates prompts and
// domain errors into console text.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hotelier/internal/domain"
	"hotelier/internal/export"
	"hotelier/internal/models"

	"github.com/rs/zerolog"
)

type CLI struct {
	service domain.ReservationService
	export  *export.Writer
	in      *bufio.Scanner
	out     io.Writer
	logger  *zerolog.Logger
}

func New(service domain.ReservationService, exportWriter *export.Writer, in io.Reader, out io.Writer, logger *zerolog.Logger) *CLI {
	return &CLI{
		service: service,
		export:  exportWriter,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger,
	}
}

// Run drives the menu loop until the user quits, input ends, or the
// context is cancelled. Domain errors are printed and the loop
// continues; they never terminate the process.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		c.printMenu()
		choice, ok := c.promptInt("Enter your choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			c.viewAllRooms()
		case 2:
			c.searchByCategory()
		case 3:
			c.makeReservation(ctx)
		case 4:
			c.cancelReservation(ctx)
		case 5:
			c.viewAllReservations()
		case 6:
			c.viewReservationByID()
		case 7:
			c.exportLedger()
		case 0:
			fmt.Fprintln(c.out, "Exiting... Thank you!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "===== HOTEL RESERVATION SYSTEM =====")
	fmt.Fprintln(c.out, "1. View all rooms")
	fmt.Fprintln(c.out, "2. Search available rooms by category")
	fmt.Fprintln(c.out, "3. Make a reservation")
	fmt.Fprintln(c.out, "4. Cancel a reservation")
	fmt.Fprintln(c.out, "5. View all reservations")
	fmt.Fprintln(c.out, "6. View reservation by ID")
	fmt.Fprintln(c.out, "7. Export reservations to Excel")
	fmt.Fprintln(c.out, "0. Exit")
}

func (c *CLI) viewAllRooms() {
	fmt.Fprintln(c.out, "===== ALL ROOMS =====")
	for _, room := range c.service.Rooms() {
		fmt.Fprintln(c.out, room)
	}
	fmt.Fprintln(c.out, "=====================")
}

func (c *CLI) searchByCategory() {
	category, ok := c.askCategory()
	if !ok {
		fmt.Fprintln(c.out, "Invalid room category choice.")
		return
	}
	c.showAvailableRooms(category)
}

func (c *CLI) showAvailableRooms(category models.RoomCategory) {
	fmt.Fprintf(c.out, "===== AVAILABLE %s ROOMS =====\n", strings.ToUpper(category.Label()))
	rooms := c.service.AvailableByCategory(category)
	if len(rooms) == 0 {
		fmt.Fprintln(c.out, "No available rooms of this category.")
	} else {
		for _, room := range rooms {
			fmt.Fprintln(c.out, room)
		}
	}
	fmt.Fprintln(c.out, "===================================")
}

func (c *CLI) makeReservation(ctx context.Context) {
	name, ok := c.promptLine("Enter customer name: ")
	if !ok {
		return
	}

	category, ok := c.askCategory()
	if !ok {
		fmt.Fprintln(c.out, "Invalid room category choice.")
		return
	}
	c.showAvailableRooms(category)

	roomID, ok := c.promptInt("Enter room number to book: ")
	if !ok {
		return
	}
	nights, ok := c.promptInt("Enter number of nights: ")
	if !ok {
		return
	}

	res, err := c.service.Book(ctx, name, roomID, nights)
	if err != nil {
		fmt.Fprintln(c.out, c.errorMessage(err))
		return
	}

	fmt.Fprintf(c.out, "Total amount to be paid: Rs. %.2f\n", res.Amount)
	fmt.Fprintln(c.out, "Booking confirmed!")
	fmt.Fprintln(c.out, res)
}

func (c *CLI) cancelReservation(ctx context.Context) {
	id, ok := c.promptInt("Enter Reservation ID to cancel: ")
	if !ok {
		return
	}

	if _, err := c.service.Cancel(ctx, id); err != nil {
		fmt.Fprintln(c.out, c.errorMessage(err))
		return
	}
	fmt.Fprintln(c.out, "Reservation cancelled successfully.")
}

func (c *CLI) viewAllReservations() {
	fmt.Fprintln(c.out, "===== ALL RESERVATIONS =====")
	reservations := c.service.Reservations()
	if len(reservations) == 0 {
		fmt.Fprintln(c.out, "No reservations found.")
	} else {
		for _, res := range reservations {
			fmt.Fprintln(c.out, res)
		}
	}
	fmt.Fprintln(c.out, "============================")
}

func (c *CLI) viewReservationByID() {
	id, ok := c.promptInt("Enter Reservation ID to view: ")
	if !ok {
		return
	}

	res, err := c.service.ReservationByID(id)
	if err != nil {
		fmt.Fprintln(c.out, "No reservation found with that ID.")
		return
	}
	fmt.Fprintln(c.out, "===== RESERVATION DETAILS =====")
	fmt.Fprintln(c.out, res)
	fmt.Fprintln(c.out, "================================")
}

func (c *CLI) exportLedger() {
	if c.export == nil {
		fmt.Fprintln(c.out, "Export is not configured.")
		return
	}

	path, err := c.export.WriteLedger(c.service.Reservations())
	if err != nil {
		c.logger.Error().Err(err).Msg("ledger export failed")
		fmt.Fprintln(c.out, "Export failed, see log for details.")
		return
	}
	fmt.Fprintf(c.out, "Reservations exported to %s\n", path)
}

func (c *CLI) askCategory() (models.RoomCategory, bool) {
	fmt.Fprintln(c.out, "Select room category:")
	fmt.Fprintln(c.out, "1. Standard")
	fmt.Fprintln(c.out, "2. Deluxe")
	fmt.Fprintln(c.out, "3. Suite")

	choice, ok := c.promptInt("Enter choice: ")
	if !ok {
		return "", false
	}
	return models.CategoryFromChoice(choice)
}

// promptInt re-prompts until the user enters a number. Returns false
// only when input is exhausted.
func (c *CLI) promptInt(prompt string) (int, bool) {
	fmt.Fprint(c.out, prompt)
	for c.in.Scan() {
		value, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err == nil {
			return value, true
		}
		fmt.Fprint(c.out, "Enter a valid number: ")
	}
	return 0, false
}

func (c *CLI) promptLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return "Invalid room number."
	case errors.Is(err, domain.ErrRoomUnavailable):
		return "Room is already booked."
	case errors.Is(err, domain.ErrReservationNotFound):
		return "Reservation ID not found."
	case errors.Is(err, domain.ErrAlreadyCancelled):
		return "Reservation is already cancelled."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Invalid input: " + errorDetail(err)
	default:
		c.logger.Error().Err(err).Msg("unexpected operation error")
		return "Something went wrong, please try again."
	}
}

// errorDetail strips the sentinel prefix from a wrapped domain error,
// leaving only the human-readable detail.
func errorDetail(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}
