package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/podreview/internal/model"
)

func TestCreatePodcastRequiresName(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPodcastService(repos.Podcast)

	_, err := svc.Create(&PodcastInput{Description: "d"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"name"}, ve.Fields)
}

func TestCreatePodcastNameUnique(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPodcastService(repos.Podcast)

	created, err := svc.Create(&PodcastInput{Name: "X", Description: "d"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// 同名第二条被拒，描述不同也没用
	_, err = svc.Create(&PodcastInput{Name: "X", Description: "d2"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdatePodcastNoOwnershipCheck(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPodcastService(repos.Podcast)

	created, err := svc.Create(&PodcastInput{
		Name:     "晚风电台",
		Producer: "小王",
		Tags:     model.StringList{"闲聊"},
	})
	require.NoError(t, err)

	// 播客没有所有者，谁登录了都能改；patch 里没有的字段保持原值
	tags := model.StringList{"闲聊", "音乐"}
	updated, err := svc.Update(created.ID, &PodcastPatch{
		Description: strPtr("每晚更新"),
		Tags:        &tags,
	})
	require.NoError(t, err)
	assert.Equal(t, "每晚更新", updated.Description)
	assert.Equal(t, tags, updated.Tags)
	assert.Equal(t, "小王", updated.Producer)
}

func TestUpdatePodcastNameConflictExcludesSelf(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPodcastService(repos.Podcast)

	a, err := svc.Create(&PodcastInput{Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(&PodcastInput{Name: "B"})
	require.NoError(t, err)

	// 改成别人的名字不行
	_, err = svc.Update(a.ID, &PodcastPatch{Name: strPtr("B")})
	assert.ErrorIs(t, err, ErrDuplicate)

	// 名字没变的更新不和自己冲突
	updated, err := svc.Update(a.ID, &PodcastPatch{Name: strPtr("A"), Description: strPtr("d")})
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Name)
	assert.Equal(t, "d", updated.Description)
}

func TestUpdatePodcastNotFound(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPodcastService(repos.Podcast)

	_, err := svc.Update(9999, &PodcastPatch{Description: strPtr("d")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePodcast(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPodcastService(repos.Podcast)

	created, err := svc.Create(&PodcastInput{Name: "X"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	// 删不存在的记录报不存在，不会崩
	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)

	// 删掉之后名字可以复用
	_, err = svc.Create(&PodcastInput{Name: "X"})
	assert.NoError(t, err)
}
