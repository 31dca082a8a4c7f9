package socket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/agents"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/engine"
	"github.com/DedS3t/monopoly-engine/platform/queries"
	"github.com/DedS3t/monopoly-engine/platform/sessions"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// CreateSocketIOServer runs the realtime side: lobby rooms, game start, and
// fan-out of every engine event to the room and to redis pub/sub. All game
// mutation stays inside the engine goroutine; this layer only observes.
func CreateSocketIOServer() {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		gameId, ok := result["game_id"]
		if !ok || !queries.VerifyGame(gameId, db) {
			s.Emit("error-message", "Invalid game")
			return
		}
		userId, ok := result["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			return
		}
		user, err := queries.GetUserData(userId, db)
		if err != nil {
			s.Emit("error-message", "User retrieval failed")
			return
		}

		err = queries.CreateMember(models.Member{
			Game_id:  gameId,
			User_id:  userId,
			Username: user.Email,
			Model:    result["model"],
		}, db)
		if err != nil {
			s.Emit("error-message", "Failed joining game")
			return
		}

		s.Join(gameId)
		server.BroadcastToRoom("/", gameId, "player-join")
		s.Emit("joined-game", gameId)
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		s.Leave(result["game_id"])
		queries.DeleteMember(result["user_id"], result["game_id"], db)
		server.BroadcastToRoom("/", result["game_id"], "player-left")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameId string) {
		if _, running := sessions.Get(gameId); running {
			s.Emit("error-message", "Game already started")
			return
		}
		members, err := queries.GetMembers(gameId, db)
		if err != nil || len(members) < 2 {
			s.Emit("error-message", "Unable to start game")
			return
		}

		seed := time.Now().UnixNano()
		var configs []engine.PlayerConfig
		for i, member := range members {
			config := engine.PlayerConfig{Name: member.Username, Model: member.Model}
			if member.Model != "" {
				config.Provider = agents.NewRemote(member.Model)
			} else {
				config.Provider = agents.NewHeuristic(seed + int64(i))
			}
			configs = append(configs, config)
		}

		g := engine.NewGame(gameId, configs, seed, engine.DefaultRules())
		g.Log.Subscribe(func(entry models.LogEntry) {
			payload, err := json.Marshal(entry)
			if err != nil {
				return
			}
			server.BroadcastToRoom("/", gameId, "game-event", string(payload))
			conn := pool.Get()
			defer conn.Close()
			cache.Publish("game."+gameId+".events", string(payload), &conn)
		})
		g.OnTurn = func(turn int, playerId string) {
			server.BroadcastToRoom("/", gameId, "change-turn", playerId)
			conn := pool.Get()
			defer conn.Close()
			cache.Set(gameId, playerId, &conn)
		}

		ctx, cancel := context.WithCancel(context.Background())
		sessions.Put(gameId, &sessions.Session{Game: g, Cancel: cancel})
		queries.SetGameStatus(gameId, "in progress", db)
		server.BroadcastToRoom("/", gameId, "game-start")

		go func() {
			defer cancel()
			g.Run(ctx)
			server.BroadcastToRoom("/", gameId, "game-over", g.Winner)
			queries.SetGameStatus(gameId, "finished", db)
			cleanupRedis(gameId, pool)
			log.WithField("game", gameId).Info("game finished")
		}()
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		rooms := s.Rooms()
		for _, room := range rooms {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}

func cleanupRedis(gameId string, pool *redis.Pool) {
	conn := pool.Get()
	defer conn.Close()
	cache.Del(gameId, &conn)
}
