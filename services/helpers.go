package services

import (
	"time"

	"github.com/Dosada05/micro-tournaments/models"
	"github.com/Dosada05/micro-tournaments/storage"
	"github.com/Dosada05/micro-tournaments/utils"
	"github.com/google/uuid"
)

// Clock returns the current time; tests substitute a fixed one.
type Clock func() time.Time

func systemClock() time.Time { return time.Now() }

func populatePlayerDetailsFunc(player *models.Player, uploader storage.FileUploader) {
	if player == nil {
		return
	}
	player.PasswordHash = ""
	if player.AvatarKey != nil && *player.AvatarKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*player.AvatarKey)
		if url != "" {
			player.AvatarURL = &url
		}
	}
}

func prizeLabel(pool *float64) string {
	if pool == nil || *pool <= 0 {
		return "-"
	}
	return utils.FormatMoney(*pool)
}

func gamertagIndex(players []models.Player) map[uuid.UUID]string {
	index := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		index[p.ID] = p.Gamertag
	}
	return index
}
