package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"expenso/internal/client"
	"expenso/internal/client/report"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop, accepting commands to manage
// the account, expenses, and group splits.
func repl(api *client.API) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("expenso> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, register, login, logout, add, list, edit <id>, delete <id>, total [query] [category], bycat, split, delete-account, exit")
		case "register":
			name := prompt(scanner, "Name: ")
			email := prompt(scanner, "Email: ")
			password := prompt(scanner, "Password: ")
			if err := api.Register(name, email, password); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Println("Registered successfully")
		case "login":
			email := prompt(scanner, "Email: ")
			password := prompt(scanner, "Password: ")
			if err := api.Login(email, password); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Println("Logged in")
		case "logout":
			api.Logout()
			fmt.Println("Logged out")
		case "add":
			title := prompt(scanner, "Title: ")
			amount, ok := promptAmount(scanner)
			if !ok {
				continue
			}
			category := prompt(scanner, "Category: ")
			exp, err := api.AddExpense(title, amount, category)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Printf("Added %s (%s)\n", exp.Title, exp.ID)
		case "list":
			expenses, err := api.ListExpenses()
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			if len(expenses) == 0 {
				fmt.Println("No expenses")
				continue
			}
			for _, exp := range expenses {
				fmt.Printf("%s  %-20s %10.2f  %s\n", exp.ID, exp.Title, exp.Amount, exp.Category)
			}
		case "edit":
			if len(args) < 2 {
				fmt.Println("Usage: edit <id>")
				continue
			}
			// Empty answers keep the stored values.
			title := prompt(scanner, "New title (blank to keep): ")
			var amount float64
			if raw := prompt(scanner, "New amount (blank to keep): "); raw != "" {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					fmt.Println("Invalid amount")
					continue
				}
				amount = v
			}
			category := prompt(scanner, "New category (blank to keep): ")
			exp, err := api.UpdateExpense(args[1], title, amount, category)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Printf("Updated %s\n", exp.ID)
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			if err := api.DeleteExpense(args[1]); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Println("Expense deleted")
		case "total":
			expenses, err := api.ListExpenses()
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			query, category := "", ""
			if len(args) > 1 {
				query = args[1]
			}
			if len(args) > 2 {
				category = args[2]
			}
			filtered := report.Filter(expenses, query, category)
			fmt.Printf("Total: %.2f (%d expenses)\n", report.Total(filtered), len(filtered))
		case "bycat":
			expenses, err := api.ListExpenses()
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			for category, total := range report.CategoryTotals(expenses) {
				if category == "" {
					category = "(uncategorized)"
				}
				fmt.Printf("%-20s %10.2f\n", category, total)
			}
		case "split":
			members := promptMembers(scanner)
			split := report.EqualSplit(members)
			fmt.Printf("Total group: %.2f\n", split.Total)
			if math.IsNaN(split.PerPerson) {
				fmt.Println("Per person: undefined (no members)")
			} else {
				fmt.Printf("Per person: %.2f\n", split.PerPerson)
			}
		case "delete-account":
			if prompt(scanner, "Delete account and all expenses? (yes/no): ") != "yes" {
				continue
			}
			if err := api.DeleteAccount(); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Println("Account deleted")
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func promptAmount(scanner *bufio.Scanner) (float64, bool) {
	raw := prompt(scanner, "Amount: ")
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Println("Invalid amount")
		return 0, false
	}
	return amount, true
}

func promptMembers(scanner *bufio.Scanner) []report.Member {
	var members []report.Member
	for {
		name := prompt(scanner, "Member name (blank to finish): ")
		if name == "" {
			return members
		}
		raw := prompt(scanner, "Spent: ")
		spent, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Println("Invalid amount")
			continue
		}
		members = append(members, report.Member{Name: name, Spent: spent})
	}
}

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "backend base URL")
	flag.Parse()

	fmt.Printf("Build version: %s\n", version)
	fmt.Printf("Build date: %s\n", buildDate)

	api := client.New(&http.Client{}, *serverURL)
	fmt.Println("Type 'help' for a list of commands.")
	repl(api)
}
