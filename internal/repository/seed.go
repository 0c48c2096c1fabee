package repository

import (
	"log"
	"time"

	"github.com/user/podreview/internal/model"
)

// Seed 向空库写入演示数据，仅在 SEED_DB=true 的环境下由 main 调用
func (r *Repositories) Seed() error {
	userCount, err := r.User.Count()
	if err != nil {
		return err
	}

	if userCount == 0 {
		seedUsers := []struct {
			name, email, password, provider string
		}{
			{"Test User", "test@example.com", "Welcome1#", "local"},
			{"Admin", "admin@example.com", "Welcome1#", "local"},
			{"Kelleigh Maroney", "kelleigh.maroney@gmail.com", "Welcome1#", "google"},
		}
		for _, u := range seedUsers {
			if _, err := r.User.Create(u.name, u.email, u.password, u.provider); err != nil {
				return err
			}
		}
		log.Println("演示用户写入完成")
	}

	podcastCount, err := r.Podcast.Count()
	if err != nil {
		return err
	}

	if podcastCount == 0 {
		release := time.Date(2014, 10, 3, 0, 0, 0, 0, time.UTC)
		seedPodcasts := []*model.Podcast{
			{
				Name:        "Serial",
				Link:        "https://serialpodcast.org",
				Release:     &release,
				Producer:    "This American Life",
				Description: "One story told week by week.",
				Cast: model.CastList{
					{Actor: "Sarah Koenig", Character: "Host"},
				},
				Tags:      model.StringList{"true crime", "journalism"},
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
			{
				Name:        "Radiolab",
				Link:        "https://radiolab.org",
				Producer:    "WNYC Studios",
				Description: "Investigating a strange world.",
				Cast: model.CastList{
					{Actor: "Jad Abumrad", Character: "Host"},
					{Actor: "Robert Krulwich", Character: "Host"},
				},
				Tags:      model.StringList{"science", "storytelling"},
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			},
		}
		for _, p := range seedPodcasts {
			if err := r.Podcast.Create(p); err != nil {
				return err
			}
		}
		log.Println("演示播客写入完成")
	}

	return nil
}
