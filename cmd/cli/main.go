package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "auth":
		handleAuth(args)
	case "listing":
		handleListing(args)
	case "report":
		handleReport(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: unihaven auth <register|login|logout|who>")
		return
	}

	subCmd := args[0]
	switch subCmd {
	case "register":
		registerAccount(args[1:])
	case "login":
		loginAccount(args[1:])
	case "logout":
		logoutAccount()
	case "who":
		whoAmI()
	default:
		fmt.Printf("unknown auth command: %s\n", subCmd)
	}
}

func handleListing(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: unihaven listing <browse|list|publish|hide>")
		return
	}

	subCmd := args[0]
	switch subCmd {
	case "browse":
		browseListings()
	case "list":
		listAllListings()
	case "publish":
		transitionListing(args[1:], "publish")
	case "hide":
		transitionListing(args[1:], "hide")
	default:
		fmt.Printf("unknown listing command: %s\n", subCmd)
	}
}

func handleReport(args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: unihaven report <list|submit>")
		return
	}

	subCmd := args[0]
	switch subCmd {
	case "list":
		listReports(args[1:])
	case "submit":
		submitReport(args[1:])
	default:
		fmt.Printf("unknown report command: %s\n", subCmd)
	}
}

// Auth commands
func registerAccount(args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	id := fs.String("id", "", "account id")
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	role := fs.String("role", "resident", "role (resident, provider, moderator)")

	fs.Parse(args)

	if *id == "" || *username == "" || *email == "" || *password == "" {
		fmt.Println("Error: id, username, email, and password are required")
		fs.PrintDefaults()
		return
	}

	payload := map[string]string{
		"id":       *id,
		"username": *username,
		"email":    *email,
		"password": *password,
		"role":     *role,
	}

	data, _ := json.Marshal(payload)
	resp, err := http.Post(getAPIURL()+"/auth/register", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	if resp.StatusCode == 201 {
		fmt.Printf("✓ Account registered: %s\n", *username)
	} else {
		fmt.Printf("✗ Registration failed: %v\n", result)
	}
}

func loginAccount(args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")

	fs.Parse(args)

	if *username == "" || *password == "" {
		fmt.Println("Error: username and password are required")
		fs.PrintDefaults()
		return
	}

	payload := map[string]string{"username": *username, "password": *password}
	data, _ := json.Marshal(payload)
	resp, err := http.Post(getAPIURL()+"/auth/login", "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	if resp.StatusCode == 200 {
		if token, ok := result["token"].(string); ok {
			saveToken(token)
			fmt.Printf("✓ Logged in as: %s\n", *username)
		}
	} else {
		fmt.Printf("✗ Login failed: %v\n", result)
	}
}

func logoutAccount() {
	req, _ := http.NewRequest("POST", getAPIURL()+"/auth/logout", nil)
	addAuthHeader(req)
	http.DefaultClient.Do(req)
	os.Remove(tokenFile())
	fmt.Println("✓ Logged out")
}

func whoAmI() {
	token := loadToken()
	if token == "" {
		fmt.Println("Not logged in")
		return
	}

	req, _ := http.NewRequest("GET", getAPIURL()+"/auth/me", nil)
	addAuthHeader(req)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	if resp.StatusCode == 200 {
		fmt.Printf("✓ Logged in as %v (%v)\n", result["username"], result["role"])
	} else {
		fmt.Println("Session expired, log in again")
	}
}

// Listing commands
func browseListings() {
	resp, err := http.Get(getAPIURL() + "/listings/published")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()
	printListingTable(resp)
}

func listAllListings() {
	req, _ := http.NewRequest("GET", getAPIURL()+"/listings", nil)
	addAuthHeader(req)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()
	printListingTable(resp)
}

func printListingTable(resp *http.Response) {
	var listings []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&listings)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tSTATUS")
	for _, l := range listings {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", l["ID"], l["Title"], l["Price"], l["Status"])
	}
	w.Flush()
}

func transitionListing(args []string, action string) {
	if len(args) < 1 {
		fmt.Printf("Usage: unihaven listing %s <listing-id>\n", action)
		return
	}

	req, _ := http.NewRequest("POST", getAPIURL()+"/listings/"+args[0]+"/"+action, nil)
	addAuthHeader(req)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == 200 {
		fmt.Printf("✓ Listing %s: %s\n", args[0], action)
	} else {
		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		fmt.Printf("✗ Failed: %v\n", result)
	}
}

// Report commands
func listReports(args []string) {
	fs := flag.NewFlagSet("report-list", flag.ExitOnError)
	status := fs.String("status", "pending", "filter by status")
	fs.Parse(args)

	req, _ := http.NewRequest("GET", getAPIURL()+"/reports?status="+*status, nil)
	addAuthHeader(req)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	var reports []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&reports)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREASON\tSTATUS\tREPORTER")
	for _, r := range reports {
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", r["ID"], r["Reason"], r["Status"], r["ReporterID"])
	}
	w.Flush()
}

func submitReport(args []string) {
	fs := flag.NewFlagSet("report-submit", flag.ExitOnError)
	id := fs.String("id", "", "report id")
	reporter := fs.String("reporter", "", "reporter account id")
	listing := fs.String("listing", "", "target listing id (optional)")
	user := fs.String("user", "", "target user id (optional)")
	reason := fs.String("reason", "", "reason")
	fs.Parse(args)

	if *id == "" || *reporter == "" || *reason == "" {
		fmt.Println("Error: id, reporter, and reason are required")
		fs.PrintDefaults()
		return
	}

	payload := map[string]string{
		"id":              *id,
		"reporterId":      *reporter,
		"targetListingId": *listing,
		"targetUserId":    *user,
		"reason":          *reason,
	}
	data, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", getAPIURL()+"/reports", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(req)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == 201 {
		fmt.Printf("✓ Report submitted: %s\n", *id)
	} else {
		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		fmt.Printf("✗ Failed: %v\n", result)
	}
}

// Helper functions
func getAPIURL() string {
	if url := os.Getenv("UNIHAVEN_API"); url != "" {
		return url
	}
	return "http://localhost:8080/api"
}

func tokenFile() string {
	home, _ := os.UserHomeDir()
	return home + "/.unihaven/token"
}

func saveToken(token string) error {
	home, _ := os.UserHomeDir()
	os.MkdirAll(home+"/.unihaven", 0700)
	return os.WriteFile(tokenFile(), []byte(token), 0600)
}

func loadToken() string {
	data, _ := os.ReadFile(tokenFile())
	return string(data)
}

func addAuthHeader(req *http.Request) {
	token := loadToken()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func printUsage() {
	fmt.Print(`UniHaven CLI

Usage:
  unihaven <command> [options]

Commands:
  auth     Account authentication (register, login, logout, who)
  listing  Listing operations (browse, list, publish, hide)
  report   Moderation reports (list, submit)
  help     Show this help message

Environment Variables:
  UNIHAVEN_API    API endpoint (default: http://localhost:8080/api)

Examples:
  unihaven auth register -id u1 -username ana -email ana@uni.edu -password pass
  unihaven auth login -username ana -password pass
  unihaven listing browse
  unihaven report list -status pending
`)
}
