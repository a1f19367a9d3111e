package types

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// GoldPrice is one daily gold quote from /services/gold-silver/.
type GoldPrice struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// Video is a YouTube search hit from /services/youtube/.
type Video struct {
	ID          string
	Title       string
	Description string
	Channel     string
	Thumbnail   string
	PublishedAt time.Time
}

// youtubeItem mirrors one element of the YouTube search API "items" array.
type youtubeItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		ChannelTitle string    `json:"channelTitle"`
		PublishedAt  time.Time `json:"publishedAt"`
		Thumbnails   struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
}

// UnmarshalJSON decodes a YouTube search item into a flat Video.
func (v *Video) UnmarshalJSON(b []byte) error {
	var it youtubeItem
	if err := json.Unmarshal(b, &it); err != nil {
		return err
	}
	*v = Video{
		ID:          it.ID.VideoID,
		Title:       it.Snippet.Title,
		Description: it.Snippet.Description,
		Channel:     it.Snippet.ChannelTitle,
		Thumbnail:   it.Snippet.Thumbnails.Default.URL,
		PublishedAt: it.Snippet.PublishedAt,
	}
	return nil
}

// MarshalJSON encodes the video back into the YouTube item shape.
func (v Video) MarshalJSON() ([]byte, error) {
	var it youtubeItem
	it.ID.VideoID = v.ID
	it.Snippet.Title = v.Title
	it.Snippet.Description = v.Description
	it.Snippet.ChannelTitle = v.Channel
	it.Snippet.PublishedAt = v.PublishedAt
	it.Snippet.Thumbnails.Default.URL = v.Thumbnail
	return json.Marshal(it)
}
