package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smilintux/skyforge/internal/contracts"
)

// profileCmd groups profile management subcommands
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage birth profiles",
	Long: `Manage stored birth profiles.

A profile needs a name and a birth date. Birth time and birth place
are optional; without them time-of-day and location dependent domains
fall back to noon and UTC and are marked degraded in reports.

Example:
  go run ./cmd/skyforge profile add jane --birth-date 1992-06-21
  go run ./cmd/skyforge profile add jane --birth-date 1992-06-21 --birth-time 08:30 --place "Lisbon, Portugal" --timezone Europe/Lisbon
  go run ./cmd/skyforge profile list
  go run ./cmd/skyforge profile show jane
  go run ./cmd/skyforge profile delete jane`,
}

var (
	profileBirthDate string
	profileBirthTime string
	profilePlace     string
	profileLat       float64
	profileLon       float64
	profileTimezone  string
)

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create or update a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileAdd,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileAddCmd, profileListCmd, profileShowCmd, profileDeleteCmd)

	profileAddCmd.Flags().StringVar(&profileBirthDate, "birth-date", "", "birth date (YYYY-MM-DD, required)")
	profileAddCmd.Flags().StringVar(&profileBirthTime, "birth-time", "", "birth time (HH:MM, optional)")
	profileAddCmd.Flags().StringVar(&profilePlace, "place", "", "birth place name, resolved via geocoding")
	profileAddCmd.Flags().Float64Var(&profileLat, "lat", 0, "birth latitude (overrides geocoding)")
	profileAddCmd.Flags().Float64Var(&profileLon, "lon", 0, "birth longitude (overrides geocoding)")
	profileAddCmd.Flags().StringVar(&profileTimezone, "timezone", "", "IANA timezone of the birth place")
	profileAddCmd.MarkFlagRequired("birth-date")
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	birthDate, err := contracts.ParseDate(profileBirthDate)
	if err != nil {
		return fmt.Errorf("invalid birth date %q (expected YYYY-MM-DD)", profileBirthDate)
	}

	profile := &contracts.Profile{
		Name:      args[0],
		BirthDate: birthDate,
		BirthTime: profileBirthTime,
	}

	switch {
	case cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon"):
		profile.Location = &contracts.Location{
			Place:     profilePlace,
			Latitude:  profileLat,
			Longitude: profileLon,
			Timezone:  profileTimezone,
		}
	case profilePlace != "":
		loc, err := rt.geocoder.Resolve(ctx, profilePlace)
		if err != nil {
			PrintWarning(fmt.Sprintf("Geocoding failed (%v), saving without location", err))
		} else if loc == nil {
			PrintWarning(fmt.Sprintf("Place %q not found, saving without location", profilePlace))
		} else {
			loc.Timezone = profileTimezone
			profile.Location = loc
		}
	}

	if err := rt.store.Save(ctx, profile); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Profile %s saved (version %d)", profile.Name, profile.Version))
	if !profile.HasBirthTime() {
		PrintInfo("No birth time: Human Design and I Ching will use a noon fallback")
	}
	if !profile.HasLocation() {
		PrintInfo("No location: moon and solar domains will use a UTC fallback")
	}
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	list, err := rt.store.List(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		PrintInfo("No profiles stored")
		return nil
	}

	PrintHeader("Stored Profiles")
	for _, p := range list {
		place := "-"
		if p.Location != nil {
			place = p.Location.Place
		}
		fmt.Printf("  %-20s v%-3d born %s  %s\n",
			p.Name, p.Version, p.BirthDate.Format(contracts.DateLayout), place)
	}
	PrintSeparator()
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	p, err := rt.store.Load(ctx, args[0])
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Profile: %s", p.Name))
	PrintKeyValue("Version", fmt.Sprintf("%d", p.Version), 12)
	PrintKeyValue("Birth date", p.BirthDate.Format(contracts.DateLayout), 12)
	if p.HasBirthTime() {
		PrintKeyValue("Birth time", p.BirthTime, 12)
	} else {
		PrintKeyValue("Birth time", "unknown (noon fallback)", 12)
	}
	if p.Location != nil {
		PrintKeyValue("Place", p.Location.Place, 12)
		PrintKeyValue("Coordinates", fmt.Sprintf("%.6f, %.6f", p.Location.Latitude, p.Location.Longitude), 12)
		if p.Location.Timezone != "" {
			PrintKeyValue("Timezone", p.Location.Timezone, 12)
		}
	} else {
		PrintKeyValue("Place", "unknown (UTC fallback)", 12)
	}
	PrintSeparator()
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := rt.store.Delete(ctx, args[0]); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Profile %s deleted", args[0]))
	return nil
}
