package video

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Service lists the marketing channel's videos. Responses are passed through
// provider-native so the frontend gets titles, thumbnails and statistics
// exactly as YouTube reports them.
type Service struct {
	yt        *youtube.Service
	channelID string
}

func NewService(ctx context.Context, apiKey, channelID string) (*Service, error) {
	yt, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}
	return &Service{yt: yt, channelID: channelID}, nil
}

// ListChannelVideos returns the channel's most recent videos, newest first.
func (s *Service) ListChannelVideos(ctx context.Context, maxResults int64) ([]*youtube.SearchResult, error) {
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 25
	}

	call := s.yt.Search.List([]string{"snippet"}).
		ChannelId(s.channelID).
		Type("video").
		Order("date").
		MaxResults(maxResults)

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: list channel videos: %w", err)
	}
	return resp.Items, nil
}

// GetVideo fetches one video with its snippet and statistics.
func (s *Service) GetVideo(ctx context.Context, id string) (*youtube.Video, error) {
	resp, err := s.yt.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(id).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: get video %s: %w", id, err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}
	return resp.Items[0], nil
}
