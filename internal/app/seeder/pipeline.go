package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

// allPhases defines the canonical execution order. Later phases use the
// users and polls generated by earlier ones in the same run.
var allPhases = []string{"users", "friends", "polls", "votes", "comments"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates demo data generation.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	hasher  PasswordHasher
	cfg     Config
	rnd     *rand.Rand
	now     func() time.Time
	results map[string]PhaseResult

	emails []string
	polls  []*domain.Poll
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, hasher PasswordHasher, cfg Config) *Pipeline {
	p := &Pipeline{
		log:     log,
		repos:   repos,
		hasher:  hasher,
		cfg:     cfg,
		rnd:     rand.New(rand.NewPCG(cfg.RandomSeed, cfg.RandomSeed^0x9e3779b97f4a7c15)),
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
	p.emails = make([]string, cfg.Users)
	for i := range cfg.Users {
		p.emails[i] = fmt.Sprintf("user%03d@%s", i+1, cfg.EmailDomain)
	}
	return p
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no known phase in %v (known: %v)", phases, allPhases)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "friends":
			result = p.runFriends(ctx)
		case "polls":
			result = p.runPolls(ctx)
		case "votes":
			result = p.runVotes(ctx)
		case "comments":
			result = p.runComments(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runUsers creates the demo accounts. Existing accounts are skipped.
func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.emails)}
	}

	hash, err := p.hasher.Hash(p.cfg.Password)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("hash password: %w", err)}
	}

	var result PhaseResult
	for i, email := range p.emails {
		first, last := firstNames[i%len(firstNames)], lastNames[(i/len(firstNames))%len(lastNames)]
		now := p.now()
		_, err := p.repos.Users.Create(ctx, &domain.User{
			Email:        email,
			PasswordHash: hash,
			FirstName:    &first,
			LastName:     &last,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		switch {
		case err == nil:
			result.Inserted++
		case errors.Is(err, domain.ErrAlreadyExists):
			result.Skipped++
		default:
			p.log.Warn("create user", slog.String("email", email), slog.String("error", err.Error()))
			result.Errors++
		}
	}
	return result
}

// runFriends links every user to the next FriendsPerUser users.
func (p *Pipeline) runFriends(ctx context.Context) PhaseResult {
	var result PhaseResult
	for i, email := range p.emails {
		for _, friend := range p.friendsOf(i) {
			if p.cfg.DryRun {
				result.Skipped++
				continue
			}
			if _, err := p.repos.Users.AddFriend(ctx, email, friend); err != nil {
				p.log.Warn("add friend", slog.String("email", email), slog.String("error", err.Error()))
				result.Errors++
				continue
			}
			result.Inserted++
		}
	}
	return result
}

// runPolls creates PollsPerUser polls per user from the question catalog.
// Some polls hide their results and a few are visible to friends only.
// Ids come from the seeded generator, so a rerun finds its polls again.
func (p *Pipeline) runPolls(ctx context.Context) PhaseResult {
	var result PhaseResult
	for i, owner := range p.emails {
		for range p.cfg.PollsPerUser {
			poll := p.newPoll(i, owner)
			p.polls = append(p.polls, poll)

			if p.cfg.DryRun {
				result.Skipped++
				continue
			}
			err := p.repos.Polls.Create(ctx, poll)
			switch {
			case err == nil:
				result.Inserted++
			case errors.Is(err, domain.ErrAlreadyExists):
				result.Skipped++
			default:
				p.log.Warn("create poll", slog.String("owner", owner), slog.String("error", err.Error()))
				result.Errors++
			}
		}
	}
	return result
}

// runVotes lets each user vote on each poll they can see with
// VoteProbability. Duplicate ballots are skipped.
func (p *Pipeline) runVotes(ctx context.Context) PhaseResult {
	var result PhaseResult
	for _, poll := range p.polls {
		for _, voter := range p.emails {
			if !domain.CanView(poll, voter) || p.rnd.Float64() >= p.cfg.VoteProbability {
				continue
			}
			option := poll.Options[p.rnd.IntN(len(poll.Options))]

			if p.cfg.DryRun {
				result.Skipped++
				continue
			}
			_, err := p.repos.Polls.CastVote(ctx, poll.ID, option.ID, voter)
			switch {
			case err == nil:
				result.Inserted++
			case errors.Is(err, domain.ErrAlreadyVoted):
				result.Skipped++
			default:
				p.log.Warn("cast vote", slog.String("poll_id", poll.ID.String()), slog.String("error", err.Error()))
				result.Errors++
			}
		}
	}
	return result
}

// runComments adds CommentsPerPoll remarks from random viewers of each poll.
func (p *Pipeline) runComments(ctx context.Context) PhaseResult {
	var result PhaseResult
	for _, poll := range p.polls {
		viewers := p.viewersOf(poll)
		for range p.cfg.CommentsPerPoll {
			c := &domain.Comment{
				ID:     newID(p.rnd),
				PollID: poll.ID,
				Author: viewers[p.rnd.IntN(len(viewers))],
				Text:   remarks[p.rnd.IntN(len(remarks))],
			}

			if p.cfg.DryRun {
				result.Skipped++
				continue
			}
			_, err := p.repos.Comments.Create(ctx, c)
			switch {
			case err == nil:
				result.Inserted++
			case errors.Is(err, domain.ErrAlreadyExists):
				result.Skipped++
			default:
				p.log.Warn("create comment", slog.String("poll_id", poll.ID.String()), slog.String("error", err.Error()))
				result.Errors++
			}
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Generators
// ---------------------------------------------------------------------------

func (p *Pipeline) friendsOf(i int) []string {
	n := min(p.cfg.FriendsPerUser, len(p.emails)-1)
	out := make([]string, 0, max(n, 0))
	for k := 1; k <= n; k++ {
		out = append(out, p.emails[(i+k)%len(p.emails)])
	}
	return out
}

func (p *Pipeline) viewersOf(poll *domain.Poll) []string {
	var out []string
	for _, e := range p.emails {
		if domain.CanView(poll, e) {
			out = append(out, e)
		}
	}
	return out
}

func (p *Pipeline) newPoll(ownerIdx int, owner string) *domain.Poll {
	tpl := questions[p.rnd.IntN(len(questions))]

	options := make([]domain.Option, len(tpl.options))
	for i, text := range tpl.options {
		options[i] = domain.Option{Text: text}
	}

	var privacy domain.Privacy
	switch r := p.rnd.Float64(); {
	case r < 0.1:
		privacy.PollHidden = true
		privacy.AllowedViewers = p.friendsOf(ownerIdx)
	case r < 0.3:
		privacy.ResultsHidden = true
	}

	poll := domain.NewPoll(owner, tpl.question, nil, privacy, options, p.now())
	poll.ID = newID(p.rnd)
	for i := range poll.Options {
		poll.Options[i].ID = newID(p.rnd)
		poll.Options[i].PollID = poll.ID
	}
	return poll
}
