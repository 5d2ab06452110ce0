package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(addr, password string, dbIndex int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisLeaderboardRepo implements LeaderboardRepo with one sorted set of
// scores and one hash of display fields per game.
type RedisLeaderboardRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisLeaderboardRepo creates a RedisLeaderboardRepo. Keys are namespaced
// under prefix.
func NewRedisLeaderboardRepo(client redis.UniversalClient, prefix string) *RedisLeaderboardRepo {
	if prefix == "" {
		prefix = "readynurse"
	}
	return &RedisLeaderboardRepo{client: client, prefix: prefix}
}

type redisEntryMeta struct {
	UserName  string `json:"userName"`
	AvatarURL string `json:"avatarUrl"`
	BorderID  string `json:"borderId"`
	UpdatedAt string `json:"updatedAt"`
}

func (r *RedisLeaderboardRepo) scoresKey(gameID string) string {
	return fmt.Sprintf("%s:leaderboard:%s:scores", r.prefix, gameID)
}

func (r *RedisLeaderboardRepo) metaKey(gameID string) string {
	return fmt.Sprintf("%s:leaderboard:%s:players", r.prefix, gameID)
}

// Submit uses ZADD GT so a lower score never replaces the stored best.
func (r *RedisLeaderboardRepo) Submit(ctx context.Context, e *domain.LeaderboardEntry) error {
	meta, err := json.Marshal(redisEntryMeta{
		UserName:  e.UserName,
		AvatarURL: e.AvatarURL,
		BorderID:  e.BorderID,
		UpdatedAt: nowUTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding leaderboard entry: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAddGT(ctx, r.scoresKey(e.GameID), redis.Z{Score: float64(e.Score), Member: e.UserID})
		pipe.HSet(ctx, r.metaKey(e.GameID), e.UserID, string(meta))
		return nil
	})
	if err != nil {
		return fmt.Errorf("submitting leaderboard entry: %w", err)
	}
	return nil
}

func (r *RedisLeaderboardRepo) Top(ctx context.Context, gameID string, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	scores, err := r.client.ZRevRangeWithScores(ctx, r.scoresKey(gameID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing leaderboard: %w", err)
	}
	if len(scores) == 0 {
		return nil, nil
	}

	ids := make([]string, len(scores))
	for i, z := range scores {
		ids[i], _ = z.Member.(string)
	}
	metas, err := r.client.HMGet(ctx, r.metaKey(gameID), ids...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("loading leaderboard players: %w", err)
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		e := &domain.LeaderboardEntry{GameID: gameID, UserID: ids[i], Score: int(z.Score)}
		if i < len(metas) {
			if raw, ok := metas[i].(string); ok {
				var m redisEntryMeta
				if err := json.Unmarshal([]byte(raw), &m); err == nil {
					e.UserName = m.UserName
					e.AvatarURL = m.AvatarURL
					e.BorderID = m.BorderID
					e.UpdatedAt = parseTime(m.UpdatedAt)
				}
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
