// Admin bot: grants and revokes premium access for the retrofit tools
// from a single trusted Telegram chat.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	auth "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/auth"
	repo "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/repo"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

func main() {
	token := os.Getenv("TOKEN_BOT")
	peerStr := os.Getenv("ADMIN_PEER_ID")
	if token == "" || peerStr == "" {
		log.Fatal("TOKEN_BOT or ADMIN_PEER_ID missing")
	}
	adminID, _ := strconv.ParseInt(peerStr, 10, 64)

	db := auth.InitDB()
	defer db.Close()
	users := repo.NewPostgresUserDB(db)

	offset := 0
	for {
		updates, err := getUpdates(token, offset)
		if err != nil {
			log.Println("getUpdates error:", err)
			time.Sleep(2 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message != nil {
				handleCommand(token, adminID, users, u.Message)
			}
		}
		time.Sleep(1 * time.Second)
	}
}

// Commands: /premium <login> <days>, /revoke <login>
func handleCommand(token string, adminID int64, users *repo.PostgresUserRepository, msg *Message) {
	if msg.Chat.ID != adminID {
		return
	}
	parts := strings.Fields(msg.Text)
	if len(parts) < 2 {
		sendMessage(token, adminID, "Usage: /premium <login> <days> or /revoke <login>")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	login := parts[1]
	id, _, err := users.GetByLogin(ctx, login)
	if err != nil || id == 0 {
		sendMessage(token, adminID, fmt.Sprintf("User %q not found", login))
		return
	}

	switch parts[0] {
	case "/premium":
		days := 30
		if len(parts) > 2 {
			if d, err := strconv.Atoi(parts[2]); err == nil && d > 0 {
				days = d
			}
		}
		until := time.Now().AddDate(0, 0, days)
		if err := users.SetPremium(ctx, id, until); err != nil {
			sendMessage(token, adminID, "DB error: "+err.Error())
			return
		}
		sendMessage(token, adminID, fmt.Sprintf("Premium for %s until %s", login, until.Format("2006-01-02")))
	case "/revoke":
		if err := users.ClearPremium(ctx, id); err != nil {
			sendMessage(token, adminID, "DB error: "+err.Error())
			return
		}
		sendMessage(token, adminID, "Premium revoked for "+login)
	default:
		sendMessage(token, adminID, "Unknown command")
	}
}

func getUpdates(token string, offset int) ([]Update, error) {
	resp, err := http.Get(fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates?timeout=25&offset=%d", token, offset))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var ur UpdateResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return nil, err
	}
	if !ur.OK {
		return nil, fmt.Errorf("telegram api error")
	}
	return ur.Result, nil
}

func sendMessage(token string, chatID int64, text string) {
	_, err := http.PostForm(
		fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", token),
		url.Values{"chat_id": {strconv.FormatInt(chatID, 10)}, "text": {text}},
	)
	if err != nil {
		log.Println("sendMessage error:", err)
	}
}
