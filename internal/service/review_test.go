package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/user/podreview/internal/model"
)

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func validInput(podcastID int) *ReviewInput {
	return &ReviewInput{
		Name:     "很棒的一期",
		Podcast:  podcastID,
		Rating:   intPtr(4),
		Review:   "值得一听",
		Spoilers: boolPtr(false),
	}
}

func TestCreateReviewMissingFields(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	_, err := svc.Create(&ReviewInput{}, 1, "张三")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"podcast", "review", "rating", "name", "spoilers"}, ve.Fields)
}

func TestCreateReviewSpoilersFalseIsValid(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	// spoilers 显式传 false 不算缺失
	review, err := svc.Create(validInput(1), 1, "张三")
	require.NoError(t, err)
	assert.False(t, review.Spoilers)
}

func TestCreateReviewForcesReviewerSnapshot(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	review, err := svc.Create(validInput(1), 42, "张三")
	require.NoError(t, err)
	assert.Equal(t, 42, review.Reviewer.ID)
	assert.Equal(t, "张三", review.Reviewer.Name)

	// 用户改名后旧评论保留旧名字（快照，不做联表）
	saved, err := repos.Review.FindByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, "张三", saved.Reviewer.Name)
}

func TestCreateReviewDuplicate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	_, err := svc.Create(validInput(1), 1, "张三")
	require.NoError(t, err)

	// 同一用户、同一播客、同样没有集号：第二条必须被拒
	_, err = svc.Create(validInput(1), 1, "张三")
	assert.ErrorIs(t, err, ErrDuplicate)

	// 换个用户就没问题
	_, err = svc.Create(validInput(1), 2, "李四")
	assert.NoError(t, err)

	// 换个播客也没问题
	_, err = svc.Create(validInput(2), 1, "张三")
	assert.NoError(t, err)
}

func TestCreateReviewEpisodeZeroDistinctFromAbsent(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	// 整播客的评论
	_, err := svc.Create(validInput(1), 1, "张三")
	require.NoError(t, err)

	// 第 0 集的评论：集号 0 和"没有集号"是两个键
	input := validInput(1)
	input.Episode = intPtr(0)
	_, err = svc.Create(input, 1, "张三")
	require.NoError(t, err)

	// 再评一次第 0 集才是重复
	_, err = svc.Create(input, 1, "张三")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUniqueIndexBacksUpPrecheck(t *testing.T) {
	repos := newTestRepos(t)

	// 绕过服务层查重直接写库，模拟并发穿过查重的情况：
	// 联合唯一索引必须兜底
	mk := func() *model.Review {
		return &model.Review{
			Name:      "t",
			PodcastID: 1,
			Rating:    3,
			Body:      "b",
			Reviewer:  model.Reviewer{ID: 1, Name: "张三"},
		}
	}
	require.NoError(t, repos.Review.Create(mk()))
	err := repos.Review.Create(mk())
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateReviewConcurrentDuplicate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(validInput(1), 1, "张三")
		}(i)
	}
	wg.Wait()

	// 无论哪边先落库，最终只能有一条记录
	count, err := repos.Review.CountByOwnerTarget(1, 1, model.EpisodeKey(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var success, duplicate int
	for _, e := range errs {
		switch {
		case e == nil:
			success++
		case errors.Is(e, ErrDuplicate):
			duplicate++
		default:
			t.Fatalf("意外的错误: %v", e)
		}
	}
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, duplicate)
}

func TestUpdateReviewOwnership(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	review, err := svc.Create(validInput(1), 1, "张三")
	require.NoError(t, err)

	// 别人改不了
	_, err = svc.Update(review.ID, 2, &ReviewPatch{Rating: intPtr(1)})
	assert.ErrorIs(t, err, ErrNotOwner)

	// 记录必须原样
	saved, err := repos.Review.FindByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, saved.Rating)
	assert.Equal(t, "值得一听", saved.Body)

	// 作者自己可以改
	updated, err := svc.Update(review.ID, 1, &ReviewPatch{
		Rating:  intPtr(5),
		Episode: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	require.NotNil(t, updated.Episode)
	assert.Equal(t, 1, *updated.Episode)
	// 未出现在 patch 里的字段保持原值
	assert.Equal(t, "值得一听", updated.Body)
}

func TestUpdateReviewEpisodeCollision(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	// 已有第 1 集的评论
	input := validInput(1)
	input.Episode = intPtr(1)
	_, err := svc.Create(input, 1, "张三")
	require.NoError(t, err)

	// 整播客的评论改成第 1 集，会撞上面那条
	whole, err := svc.Create(validInput(1), 1, "张三")
	require.NoError(t, err)

	_, err = svc.Update(whole.ID, 1, &ReviewPatch{Episode: intPtr(1)})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateReviewNotFound(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	_, err := svc.Update(9999, 1, &ReviewPatch{Rating: intPtr(5)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReview(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewReviewService(repos.Review)

	review, err := svc.Create(validInput(1), 1, "张三")
	require.NoError(t, err)

	// 别人删不掉
	err = svc.Delete(review.ID, 2)
	assert.ErrorIs(t, err, ErrNotOwner)

	// 作者可以删
	require.NoError(t, svc.Delete(review.ID, 1))

	// 重复删同一个 ID 只会报不存在，不会崩
	err = svc.Delete(review.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Delete(review.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// 删掉之后同一个键可以重新评论
	_, err = svc.Create(validInput(1), 1, "张三")
	assert.NoError(t, err)
}

func TestEpisodeKey(t *testing.T) {
	assert.Equal(t, "-", model.EpisodeKey(nil))
	assert.Equal(t, "0", model.EpisodeKey(intPtr(0)))
	assert.Equal(t, "12", model.EpisodeKey(intPtr(12)))
}
