// Command seed bulk-registers members against a project for load testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/teamnotfound/signup-backend/pkg/client"
)

var firstNames = []string{
	"Mohamed", "Ahmed", "Mahmoud", "Ali", "Hassan", "Hussein", "Omar", "Khaled",
	"Ibrahim", "Youssef", "Mostafa", "Karim", "Amir", "Adel", "Ashraf", "Fadi",
	"Nour", "Sara", "Fatima", "Aisha", "Nada", "Layla", "Mariam", "Heba", "Amira",
	"Rania", "Dina", "Aya", "Yasmin", "Noura", "Salma", "Reem", "Mai", "Mona",
}

var lastNames = []string{
	"Ibrahim", "Hassan", "Mohamed", "Ahmed", "Mahmoud", "Ali", "Sayed", "El-Din",
	"Abdelrahman", "Abdelaziz", "Khalil", "Mansour", "Elshamy", "Farouk", "Sami",
	"Sobhy", "Sherif", "Nabil", "Fahmy", "Saleh", "Fawzy", "Safwat", "Kamel",
	"Hamdy", "Gaber", "Samir", "Adel", "Fouad", "Emad", "Essam", "Adham",
}

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "API base URL")
	projectID := flag.String("project", "", "target project id (required)")
	count := flag.Int("count", 200, "number of members to add")
	workers := flag.Int("workers", 10, "concurrent registrations")
	flag.Parse()

	if *projectID == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -project <id> [-count N] [-url URL]")
		os.Exit(2)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	added, failed := 0, 0

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Every member gets its own device token, like a real browser.
				c := client.New(*baseURL, uuid.NewString())
				member, err := c.Register(context.Background(), &client.RegisterRequest{
					Name:           randomName(i),
					WhatsappNumber: randomEgyptianNumber(),
					ProjectID:      *projectID,
					SectionNumber:  randomSection(),
				})
				mu.Lock()
				if err != nil {
					failed++
					slog.Error("registration failed", "index", i, "error", err)
				} else {
					added++
					slog.Info("member added", "index", i, "member_id", member.ID, "name", member.Name)
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < *count; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	fmt.Printf("done: %d added, %d failed\n", added, failed)
}

func randomName(index int) string {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	// The index keeps names unique across the run.
	return fmt.Sprintf("%s %s %d", first, last, index)
}

func randomEgyptianNumber() string {
	return fmt.Sprintf("+20%d", 1000000000+rand.Int63n(9000000000))
}

func randomSection() *int {
	n := rand.Intn(4) + 1
	return &n
}
