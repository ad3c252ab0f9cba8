package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Limpiar-Hub/portal-core/internal/analytics"
	"github.com/Limpiar-Hub/portal-core/internal/api"
	"github.com/Limpiar-Hub/portal-core/internal/booking"
	"github.com/Limpiar-Hub/portal-core/internal/config"
	"github.com/Limpiar-Hub/portal-core/internal/inbox"
	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/Limpiar-Hub/portal-core/internal/registration"
	"github.com/Limpiar-Hub/portal-core/internal/session"
	"github.com/Limpiar-Hub/portal-core/internal/state"
	"github.com/Limpiar-Hub/portal-core/internal/telemetry"
	"github.com/dustin/go-humanize"
)

const version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	shutdown := telemetry.Init("portalctl", version)
	defer func() {
		_ = shutdown(context.Background())
	}()

	sess, err := session.NewProvider(cfg.SessionFile)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	client := api.NewClient(cfg.BackendURL, sess, api.Options{Timeout: cfg.RequestTimeout})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, client, sess, os.Args[2:])
	case "logout":
		err = sess.Clear()
	case "register":
		err = runRegister(ctx, client, os.Args[2:])
	case "bookings":
		err = runBookings(ctx, client)
	case "book":
		err = runBook(ctx, client, os.Args[2:])
	case "inbox":
		err = runInbox(ctx, client, sess, cfg)
	case "analytics":
		err = runAnalytics(ctx, client, sess, cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: portalctl <login|logout|register|bookings|book|inbox|analytics> [flags]")
}

func runLogin(ctx context.Context, client *api.Client, sess *session.Provider, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := client.Login(ctx, api.LoginInput{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	code := ""
	if result.OTPRequired {
		fmt.Print("verification code: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		code = strings.TrimSpace(line)
	}

	verified, err := client.VerifyLogin(ctx, api.VerifyLoginInput{UserID: result.UserID, Code: code})
	if err != nil {
		return err
	}
	if err := sess.Set(verified.Token, verified.User); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", verified.User.Email, verified.User.Role)
	return nil
}

func runRegister(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	business := fs.String("business", "", "business name")
	fullName := fs.String("name", "", "contact full name")
	email := fs.String("email", "", "account email")
	phone := fs.String("phone", "", "contact phone")
	password := fs.String("password", "", "account password")
	city := fs.String("city", "", "city served")
	teamSize := fs.String("team-size", "", "team size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := state.NewRegistrationForm(4)
	form.Update(map[string]string{
		"business_name": *business,
		"full_name":     *fullName,
		"email":         *email,
		"phone":         *phone,
		"password":      *password,
		"city":          *city,
		"team_size":     *teamSize,
	})

	user, err := registration.NewFlow(client, form).Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("registered %s as %s\n", user.Email, user.Role)
	return nil
}

func runBookings(ctx context.Context, client *api.Client) error {
	bookings, err := client.ListBookings(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		fmt.Println("no bookings")
		return nil
	}
	for _, b := range bookings {
		fmt.Printf("%-12s %-24s %-10s %s\n", b.BookingID, b.Property.Name, b.Status, humanize.Time(b.CreatedAt))
	}
	return nil
}

func runBook(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	propertyID := fs.String("property", "", "property id")
	propertyName := fs.String("property-name", "", "property name")
	service := fs.String("service", "", "service type id")
	serviceName := fs.String("service-name", "Cleaning", "service type name")
	slot := fs.String("slot", "09:00", "time slot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	wizard := state.NewBookingWizard()
	wizard.Open()
	wizard.SetServiceTypes([]models.ServiceType{{ID: *service, Name: *serviceName}})
	wizard.SetProperty(models.PropertyRef{ID: *propertyID, Name: *propertyName})
	wizard.SetDate(models.BookingDate{Type: models.DateTypeSingle})
	wizard.SetTimeSlots([]string{*slot})

	flow := booking.NewFlow(client, wizard)
	created, err := flow.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("booking %s created (%s)\n", created.BookingID, created.Status)
	return nil
}

func runInbox(ctx context.Context, client *api.Client, sess *session.Provider, cfg config.Config) error {
	userID := sess.UserID()
	if userID == "" {
		return fmt.Errorf("not logged in")
	}

	chats := state.NewChatStore()
	tickets := state.NewTicketStore()
	in := inbox.New(client, chats, tickets, userID, inbox.Options{
		ThreadsInterval:  cfg.ThreadsInterval,
		MessagesInterval: cfg.MessagesInterval,
	})

	log.Printf("watching inbox for user=%s", userID)
	go printThreads(ctx, chats, cfg)
	return in.Start(ctx)
}

func printThreads(ctx context.Context, chats *state.ChatStore, cfg config.Config) {
	seen := map[string]string{}
	for {
		for _, thread := range chats.Threads() {
			if seen[thread.ChatID] == thread.LastMessage {
				continue
			}
			seen[thread.ChatID] = thread.LastMessage
			fmt.Printf("[%s] unread=%d last=%q (%s)\n", thread.ChatID, thread.UnreadCount, thread.LastMessage, humanize.Time(thread.UpdatedAt))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(cfg.ThreadsInterval):
		}
	}
}

func runAnalytics(ctx context.Context, client *api.Client, sess *session.Provider, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("analytics", flag.ExitOnError)
	audience := fs.String("audience", analytics.AudiencePropertyManager, "property-manager or business")
	push := fs.String("push", "", "push report type to sheets and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userID := sess.UserID()
	if userID == "" {
		return fmt.Errorf("not logged in")
	}

	watch := analytics.NewWatch(client, *audience, userID, cfg.AnalyticsInterval)
	if *push != "" {
		return watch.PushToSheets(ctx, *push)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(cfg.AnalyticsInterval):
				latest, fetchedAt := watch.Latest()
				if fetchedAt.IsZero() {
					continue
				}
				fmt.Printf("bookings=%d active=%d completed=%d spend=%.2f (as of %s)\n",
					latest.TotalBookings, latest.ActiveBookings, latest.CompletedBookings,
					latest.TotalSpend, humanize.Time(fetchedAt))
			}
		}
	}()

	log.Printf("watching %s analytics for user=%s", *audience, userID)
	return watch.Run(ctx)
}
