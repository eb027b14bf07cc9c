package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"adaytakip/internal/report"
	"adaytakip/internal/sheet"
	"adaytakip/internal/storage"
)

// stageFlags maps CLI flag names to candidate flag columns.
var stageFlags = []struct {
	Flag   string
	Column string
}{
	{"invited", "invited"},
	{"appointment", "appointment_made"},
	{"plan-explained", "plan_explained"},
	{"registered", "registered"},
	{"followed-up", "followed_up"},
	{"declined", "declined"},
	{"job-seeking", "job_seeking"},
}

// --- add ---

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a candidate",
	Long: `Add a candidate to the tracker.

Examples:
  adaytakip add --name "Ayşe Yılmaz"
  adaytakip add --name "Mehmet Kaya" --date "05 06 24" --invited --notes "referred by Ali"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		date, _ := cmd.Flags().GetString("date")
		notes, _ := cmd.Flags().GetString("notes")

		if name == "" {
			return fmt.Errorf("--name is required")
		}

		req := map[string]any{
			"name":         name,
			"contact_date": date,
			"notes":        notes,
		}
		for _, sf := range stageFlags {
			if on, _ := cmd.Flags().GetBool(sf.Flag); on {
				req[sf.Column] = 1
			}
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.post(cmd.Context(), "/candidates", req)
		if err != nil {
			return err
		}

		var result map[string]int64
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Added candidate #%d", result["id"])
		return nil
	},
}

func init() {
	addCmd.Flags().String("name", "", "candidate full name")
	addCmd.Flags().String("date", time.Now().Format(sheet.ContactDateLayout), "contact date (DD MM YY)")
	addCmd.Flags().String("notes", "", "free-form notes")
	for _, sf := range stageFlags {
		addCmd.Flags().Bool(sf.Flag, false, "mark "+sf.Flag)
	}
}

// --- list ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates, optionally filtered by stage",
	Long: `List candidates, optionally filtered by stage.

Examples:
  adaytakip list
  adaytakip list --invited --registered`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		for _, sf := range stageFlags {
			if on, _ := cmd.Flags().GetBool(sf.Flag); on {
				q.Set(sf.Column, "1")
			}
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		path := "/candidates"
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
		resp, err := client.get(cmd.Context(), path)
		if err != nil {
			return err
		}

		var candidates []storage.Candidate
		if err := decodeJSON(resp, &candidates); err != nil {
			return err
		}

		if len(candidates) == 0 {
			fmt.Println("No candidates found.")
			return nil
		}

		fmt.Printf("%-5s %-24s %-9s %s  %s\n",
			"ID", "ADI SOYADI", "TARIH", "DVT RND PLN KYT TKP YNT IS", "ACIKLAMA")
		for _, c := range candidates {
			fmt.Printf("%-5d %-24s %-9s  %s   %s   %s   %s   %s   %s  %s  %s\n",
				c.ID,
				truncate(c.Name, 24),
				c.ContactDate,
				flagCell(c.Invited),
				flagCell(c.AppointmentMade),
				flagCell(c.PlanExplained),
				flagCell(c.Registered),
				flagCell(c.FollowedUp),
				flagCell(c.Declined),
				flagCell(c.JobSeeking),
				truncate(c.Notes, 40),
			)
		}
		fmt.Printf("\n%d candidate(s)\n", len(candidates))
		return nil
	},
}

func init() {
	for _, sf := range stageFlags {
		listCmd.Flags().Bool(sf.Flag, false, "only candidates with "+sf.Flag)
	}
}

// --- import ---

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import candidates from an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.postFile(cmd.Context(), "/import", args[0])
		if err != nil {
			return err
		}

		var result sheet.ImportResult
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Imported %d of %d rows", result.Inserted, result.Total)
		for _, f := range result.Failed {
			printWarning("line %d: %s", f.Line, f.Reason)
		}
		return nil
	},
}

// --- export ---

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all candidates to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/export")
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == 404 {
			printWarning("No candidates to export")
			return nil
		}
		if resp.StatusCode != 200 {
			body, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()

		n, err := io.Copy(f, resp.Body)
		if err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}

		printSuccess("Exported to %s (%d bytes)", output, n)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("output", sheet.ExportFileName, "output file path")
}

// --- report ---

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show funnel totals and conversion rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.get(cmd.Context(), "/report")
		if err != nil {
			return err
		}

		var s report.Summary
		if err := decodeJSON(resp, &s); err != nil {
			return err
		}

		printStatus("Candidates", "%d", s.Total)
		printStatus("Invited", "%d", s.Invited)
		printStatus("Appointments", "%d", s.Appointments)
		printStatus("Plans explained", "%d", s.PlansExplained)
		printStatus("Registered", "%d", s.Registered)
		printStatus("Followed up", "%d", s.FollowedUp)
		printStatus("Declined", "%d", s.Declined)
		printStatus("Job seeking", "%d", s.JobSeeking)
		printStatus("Invite to appointment", "%.1f%%", s.InviteToAppointmentRate)
		printStatus("Plan to registration", "%.1f%%", s.PlanToRegistrationRate)
		return nil
	},
}

// --- purge ---

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			printWarning("This will delete ALL candidates. Use --confirm to proceed.")
			return nil
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := client.delete(cmd.Context(), "/candidates")
		if err != nil {
			return err
		}

		var result map[string]int64
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		printSuccess("Deleted %d candidate(s)", result["deleted"])
		return nil
	},
}

func init() {
	purgeCmd.Flags().Bool("confirm", false, "confirm deletion")
}
