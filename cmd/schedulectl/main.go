package main

import (
	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/core/availability"
	"clinicbook-service/internal/app/services/core/holidays"
	"clinicbook-service/internal/app/services/core/schedule"
	"clinicbook-service/internal/app/services/scheduling_api/appointments"
	authClient "clinicbook-service/internal/app/services/scheduling_api/auth"
	availabilityClient "clinicbook-service/internal/app/services/scheduling_api/availability"
	"clinicbook-service/internal/app/services/scheduling_api/blocked_dates"
	holidayClient "clinicbook-service/internal/app/services/scheduling_api/holidays"
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/app/services/shared/session"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "schedulectl",
		Short:         "Terminal client for the clinic scheduling api",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("base-url", "", "Scheduling api base url (defaults to SCHEDULING_API_BASE_URL)")
	rootCmd.PersistentFlags().String("timezone", "", "Timezone calendar days are computed in (defaults to APP_TIMEZONE)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log requests to stderr")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(checkDayCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type cliEnv struct {
	log        *zap.Logger
	normalizer utils.DateNormalizer
	transport  *transport.Client
}

func newCLIEnv(cmd *cobra.Command) (*cliEnv, error) {
	internalConfig := config.NewInternalConfig()

	baseUrl, _ := cmd.Flags().GetString("base-url")
	if baseUrl == "" {
		baseUrl = internalConfig.SchedulingAPI.BaseUrl
	}
	timezone, _ := cmd.Flags().GetString("timezone")
	if timezone == "" {
		timezone = internalConfig.App.Timezone
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := zap.NewNop()
	if verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	normalizer, err := utils.NewDateNormalizerFromName(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	return &cliEnv{
		log:        log,
		normalizer: normalizer,
		transport: transport.NewClient(
			baseUrl,
			time.Duration(internalConfig.SchedulingAPI.HTTPTimeoutInSeconds)*time.Second,
			log,
		),
	}, nil
}

// viewModel builds a view-model over a token passed on the command line.
func (e *cliEnv) viewModel(token string) *schedule.ViewModel {
	return schedule.NewViewModel(schedule.Config{
		Normalizer:   e.normalizer,
		Tokens:       session.StaticTokenSource(token),
		Appointments: appointments.NewAppointmentClient(e.transport, e.log),
		Availability: availabilityClient.NewAvailabilityClient(e.transport, e.log),
		BlockedDates: blocked_dates.NewBlockedDateClient(e.transport, e.log),
		Holidays:     holidays.NewHolidayUsecase(holidayClient.NewHolidayClient(e.transport, e.log), nil, 0, e.log),
		Validator:    availability.NewValidator(e.normalizer),
		Log:          e.log,
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	return context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			env, err := newCLIEnv(cmd)
			if err != nil {
				return err
			}

			tokens, err := authClient.NewAuthClient(env.transport, env.log).Login(commandContext(cmd), &requests.Login{
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tokens.Access)
			return nil
		},
	}
	cmd.Flags().String("username", "", "Account username")
	cmd.Flags().String("password", "", "Account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print calendar markings and the selected day's items",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			date, _ := cmd.Flags().GetString("date")
			doctorID, _ := cmd.Flags().GetString("doctor")
			expand, _ := cmd.Flags().GetBool("expand")

			env, err := newCLIEnv(cmd)
			if err != nil {
				return err
			}

			vm := env.viewModel(token)
			if date != "" {
				if err := vm.SelectDate(date); err != nil {
					return err
				}
			}
			if err := vm.Refresh(commandContext(cmd)); err != nil {
				return err
			}

			printCalendar(cmd.OutOrStdout(), vm.Calendar(models.CalendarOptions{
				DoctorID: doctorID,
				Expand:   expand,
			}))
			return nil
		},
	}
	cmd.Flags().String("token", "", "Access token from the login command")
	cmd.Flags().String("date", "", "Day to show, any ISO 8601 date or timestamp (defaults to today)")
	cmd.Flags().String("doctor", "", "Only show entries for this doctor id")
	cmd.Flags().Bool("expand", false, "Expand recurring availability over the month")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func checkDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-day",
		Short: "Print whether availability can be created on a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			date, _ := cmd.Flags().GetString("date")

			env, err := newCLIEnv(cmd)
			if err != nil {
				return err
			}

			vm := env.viewModel(token)
			if err := vm.Refresh(commandContext(cmd)); err != nil {
				return err
			}

			blockable, reason := vm.IsBlockableDay(date)
			if blockable {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not schedulable, %s\n", date, reason)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: available for scheduling\n", date)
			return nil
		},
	}
	cmd.Flags().String("token", "", "Access token from the login command")
	cmd.Flags().String("date", "", "Day to check, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func printCalendar(w io.Writer, view models.CalendarView) {
	fmt.Fprintf(w, "Selected: %s (%s)\n\n", view.SelectedDate, view.Status)

	days := make([]string, 0, len(view.Markings))
	for day := range view.Markings {
		days = append(days, day)
	}
	sort.Strings(days)

	fmt.Fprintln(w, "Markings:")
	for _, day := range days {
		marking := view.Markings[day]
		fmt.Fprintf(w, "  %s  %-7s selected=%t appointment=%t block=%t\n",
			day, marking.Color(), marking.Selected, marking.HasAppointment, marking.HasBlock)
	}

	fmt.Fprintf(w, "\nAppointments (%d):\n", len(view.Appointments))
	for _, appointment := range view.Appointments {
		clock := "--:--"
		if appointment.Time != nil {
			clock = *appointment.Time
		}
		fmt.Fprintf(w, "  %s  %s  %s with %s  [%s]\n",
			appointment.GetID(), clock, appointment.PatientDisplayName(), appointment.DoctorDisplayName(), appointment.Status)
	}

	fmt.Fprintf(w, "\nBlocked (%d):\n", len(view.BlockedDates))
	for _, blocked := range view.BlockedDates {
		fmt.Fprintf(w, "  %s  %s - %s  %s\n", blocked.GetID(), blocked.StartTime, blocked.EndTime, blocked.Reason)
	}

	fmt.Fprintf(w, "\nAvailability (%d):\n", len(view.Availability))
	for _, entry := range view.Availability {
		state := "open"
		if entry.IsBlocked {
			state = "blocked"
		}
		fmt.Fprintf(w, "  %s  %s - %s  %s  %s\n", entry.GetID(), entry.StartTime, entry.EndTime, state, entry.Recurrence)
	}
}
