package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/auth"
	export "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/export"
	lighting "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/lighting"
	motor "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/motor"
	batch "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/premium/batch"
	importer "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/premium/importer"
	report "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/report"
	simulation "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/simulation"
	vfd "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/calc/vfd"
	profile "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/profile"
	repo "github.com/Areebrizz/Energy-Efficient-Factory-Retrofit-Simulator/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/upload-avatar", profileH.UploadAvatar).Methods("POST")

	motorH := &motor.Handler{}
	vfdH := &vfd.Handler{}
	lightingH := &lighting.Handler{}
	simulationH := &simulation.Handler{}
	reportH := &report.Handler{}
	exportH := &export.Handler{}

	secureApi.HandleFunc("/tools/motor/calc", motorH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/vfd/calc", vfdH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/lighting/calc", lightingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/simulation/run", simulationH.Run).Methods("POST")
	secureApi.HandleFunc("/tools/simulation/defaults", simulationH.Defaults).Methods("GET")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/export/summary.csv", exportH.SummaryCSV).Methods("POST")
	secureApi.HandleFunc("/tools/export/detailed.csv", exportH.DetailedCSV).Methods("POST")
	secureApi.HandleFunc("/tools/export/detailed.xlsx", exportH.DetailedXLSX).Methods("POST")

	batchH := &batch.Handler{}
	importerH := &importer.Handler{}

	premiumApi := secureApi.PathPrefix("/tools-premium").Subrouter()
	premiumApi.Use(authEnv.PremiumMiddleware)
	premiumApi.HandleFunc("/batch/motors", batchH.Motors).Methods("POST")
	premiumApi.HandleFunc("/import/motors", importerH.Motors).Methods("POST")

	mux.PathPrefix("/uploads/").
		Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir("./static/uploads/"))))

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	profileFileServer := http.FileServer(http.Dir("./static/profile"))
	mux.Handle("/profile/{id:[0-9]+}", authEnv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/profile/index.html")
	})))
	mux.PathPrefix("/profile/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/profile", profileFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
