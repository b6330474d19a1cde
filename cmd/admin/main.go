package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lskolhar/complain-hub/internal/complaint"
	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/docstore"
	"github.com/lskolhar/complain-hub/internal/identity"
)

func main() {
	cfg := config.FromEnv()
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	store := docstore.NewService(db)
	users := identity.NewUsers(store, nil, cfg.DefaultRole) // No redis needed for admin CLI
	complaints := complaint.NewService(store, nil)
	ctx := context.Background()

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "block":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin block <user_id> [reason]")
			os.Exit(1)
		}
		userID := os.Args[2]
		var reason string
		if len(os.Args) > 3 {
			reason = os.Args[3]
		}
		if err := users.Block(ctx, userID, reason); err != nil {
			log.Fatalf("Error blocking user: %v", err)
		}
		fmt.Printf("User %s has been blocked.\n", userID)
	case "unblock":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin unblock <user_id>")
			os.Exit(1)
		}
		userID := os.Args[2]
		if err := users.Unblock(ctx, userID); err != nil {
			log.Fatalf("Error unblocking user: %v", err)
		}
		fmt.Printf("User %s has been unblocked.\n", userID)
	case "transition":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin transition <complaint_id> <status> [description]")
			os.Exit(1)
		}
		complaintID := os.Args[2]
		fields := map[string]any{
			"status":    os.Args[3],
			"updatedBy": "admin-cli",
		}
		if len(os.Args) > 4 {
			fields["description"] = os.Args[4]
		}
		if err := complaints.Transition(ctx, complaintID, fields); err != nil {
			log.Fatalf("Error transitioning complaint: %v", err)
		}
		fmt.Printf("Complaint %s moved to %s.\n", complaintID, os.Args[3])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
