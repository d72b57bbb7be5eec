package provider

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	git2go "github.com/libgit2/git2go/v34"
	"github.com/src-d/enry/v2"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
)

// defaultCommitLimit bounds how many commits a git walk collects when the
// caller does not set a limit. It matches the particle mapper cap; anything
// beyond it would be dropped downstream anyway.
const defaultCommitLimit = 150

// maxDetectionBlobSize bounds blob reads during language detection. Files
// whose language the filename alone cannot settle are read up to this size.
const maxDetectionBlobSize = 64 * 1024

// GitRepo builds a repository descriptor from a local git repository using
// libgit2: a time-sorted revwalk from HEAD for commits, per-commit tree
// diffs for change stats, and an enry pass over the HEAD tree for the
// language breakdown.
type GitRepo struct {
	path  string
	limit int
}

// NewGitRepo returns a provider for the repository at path. limit caps the
// number of collected commits; non-positive means the default cap.
func NewGitRepo(path string, limit int) *GitRepo {
	if limit <= 0 {
		limit = defaultCommitLimit
	}

	return &GitRepo{path: path, limit: limit}
}

// Describe walks the repository and assembles the descriptor.
func (p *GitRepo) Describe(ctx context.Context) (*descriptor.Repository, error) {
	repo, err := git2go.OpenRepository(p.path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	defer repo.Free()

	commits, err := p.collectCommits(ctx, repo)
	if err != nil {
		return nil, err
	}

	if len(commits) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCommits, p.path)
	}

	languages, err := headLanguages(repo)
	if err != nil {
		return nil, err
	}

	return &descriptor.Repository{
		Name:         repoName(repo, p.path),
		CreatedAt:    commits[0].Timestamp,
		Languages:    languages,
		Contributors: aggregateContributors(commits),
		Commits:      commits,
	}, nil
}

// collectCommits walks HEAD newest-first, keeps the newest limit commits and
// returns them oldest-first with diff stats attached.
func (p *GitRepo) collectCommits(ctx context.Context, repo *git2go.Repository) ([]descriptor.Commit, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("get HEAD: %w", err)
	}

	target := head.Target()
	head.Free()

	walk, err := repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}
	defer walk.Free()

	walk.Sorting(git2go.SortTime)

	pushErr := walk.Push(target)
	if pushErr != nil {
		return nil, fmt.Errorf("push HEAD to revwalk: %w", pushErr)
	}

	var commits []descriptor.Commit

	var walkErr error

	iterErr := walk.Iterate(func(commit *git2go.Commit) bool {
		defer commit.Free()

		if ctx.Err() != nil {
			walkErr = ctx.Err()

			return false
		}

		record, recordErr := commitRecord(repo, commit)
		if recordErr != nil {
			walkErr = recordErr

			return false
		}

		commits = append(commits, record)

		return len(commits) < p.limit
	})
	if iterErr != nil {
		return nil, fmt.Errorf("revwalk iterate: %w", iterErr)
	}

	if walkErr != nil {
		return nil, walkErr
	}

	// The walk yields newest-first; downstream expects oldest-first.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}

	return commits, nil
}

// commitRecord converts one libgit2 commit into a descriptor commit with
// diff stats against its first parent. Root commits get no stats.
func commitRecord(repo *git2go.Repository, commit *git2go.Commit) (descriptor.Commit, error) {
	author := commit.Author()

	record := descriptor.Commit{
		ID:      commit.Id().String(),
		Message: strings.TrimSpace(commit.Message()),
	}

	if author != nil {
		record.AuthorName = author.Name
		record.AuthorEmail = author.Email
		record.Timestamp = author.When.UTC()
	}

	stats, err := commitStats(repo, commit)
	if err != nil {
		return descriptor.Commit{}, err
	}

	record.Stats = stats

	return record, nil
}

func commitStats(repo *git2go.Repository, commit *git2go.Commit) (*descriptor.ChangeStats, error) {
	if commit.ParentCount() == 0 {
		return nil, nil //nolint:nilnil // no parent means no diff to compute.
	}

	parent := commit.Parent(0)
	defer parent.Free()

	parentTree, err := parent.Tree()
	if err != nil {
		return nil, fmt.Errorf("get parent tree: %w", err)
	}
	defer parentTree.Free()

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("get commit tree: %w", err)
	}
	defer tree.Free()

	opts, err := git2go.DefaultDiffOptions()
	if err != nil {
		return nil, fmt.Errorf("get diff options: %w", err)
	}

	diff, err := repo.DiffTreeToTree(parentTree, tree, &opts)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}
	defer diff.Free()

	stats, err := diff.Stats()
	if err != nil {
		return nil, fmt.Errorf("get diff stats: %w", err)
	}
	defer stats.Free()

	return &descriptor.ChangeStats{
		Total:     stats.Insertions() + stats.Deletions(),
		Additions: stats.Insertions(),
		Deletions: stats.Deletions(),
	}, nil
}

// headLanguages walks the HEAD tree and sums blob sizes per detected
// language, largest first.
func headLanguages(repo *git2go.Repository) ([]descriptor.Language, error) {
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("get HEAD: %w", err)
	}

	target := head.Target()
	head.Free()

	commit, err := repo.LookupCommit(target)
	if err != nil {
		return nil, fmt.Errorf("lookup HEAD commit: %w", err)
	}
	defer commit.Free()

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("get HEAD tree: %w", err)
	}
	defer tree.Free()

	totals := map[string]int64{}

	walkErr := walkBlobs(repo, tree, "", func(filePath string, oid *git2go.Oid) {
		if enry.IsVendor(filePath) {
			return
		}

		blob, lookupErr := repo.LookupBlob(oid)
		if lookupErr != nil {
			return
		}
		defer blob.Free()

		lang := detectLanguage(filePath, blob)
		if lang == "" {
			return
		}

		totals[lang] += blob.Size()
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return sortedLanguages(totals), nil
}

// detectLanguage tries the filename first and reads the blob only when the
// name alone cannot settle the language.
func detectLanguage(filePath string, blob *git2go.Blob) string {
	lang := enry.GetLanguage(path.Base(filePath), nil)
	if lang != "" {
		return lang
	}

	if blob.Size() > maxDetectionBlobSize {
		return ""
	}

	return enry.GetLanguage(path.Base(filePath), blob.Contents())
}

// walkBlobs recursively visits every blob in the tree.
func walkBlobs(repo *git2go.Repository, tree *git2go.Tree, prefix string, visit func(path string, oid *git2go.Oid)) error {
	count := tree.EntryCount()

	for i := uint64(0); i < count; i++ {
		entry := tree.EntryByIndex(i)
		if entry == nil {
			continue
		}

		entryPath := entry.Name
		if prefix != "" {
			entryPath = prefix + "/" + entry.Name
		}

		switch entry.Type {
		case git2go.ObjectBlob:
			visit(entryPath, entry.Id)
		case git2go.ObjectTree:
			subtree, err := repo.LookupTree(entry.Id)
			if err != nil {
				continue // Skip entries we can't look up.
			}

			walkErr := walkBlobs(repo, subtree, entryPath, visit)
			subtree.Free()

			if walkErr != nil {
				return walkErr
			}
		default:
		}
	}

	return nil
}

func sortedLanguages(totals map[string]int64) []descriptor.Language {
	languages := make([]descriptor.Language, 0, len(totals))
	for name, bytes := range totals {
		languages = append(languages, descriptor.Language{Name: name, Bytes: bytes})
	}

	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Bytes != languages[j].Bytes {
			return languages[i].Bytes > languages[j].Bytes
		}

		return languages[i].Name < languages[j].Name
	})

	return languages
}

// aggregateContributors counts commits per author name, most active first.
func aggregateContributors(commits []descriptor.Commit) []descriptor.Contributor {
	counts := map[string]int{}
	for i := range commits {
		name := commits[i].AuthorName
		if name == "" {
			name = "unknown"
		}

		counts[name]++
	}

	contributors := make([]descriptor.Contributor, 0, len(counts))
	for name, count := range counts {
		contributors = append(contributors, descriptor.Contributor{Name: name, Contributions: count})
	}

	sort.Slice(contributors, func(i, j int) bool {
		if contributors[i].Contributions != contributors[j].Contributions {
			return contributors[i].Contributions > contributors[j].Contributions
		}

		return contributors[i].Name < contributors[j].Name
	})

	return contributors
}

// repoName derives the repository name from the working directory, falling
// back to the opened path for bare repositories.
func repoName(repo *git2go.Repository, openedPath string) string {
	dir := repo.Workdir()
	if dir == "" {
		dir = openedPath
	}

	dir = strings.TrimRight(dir, "/")
	dir = strings.TrimSuffix(dir, ".git")
	dir = strings.TrimRight(dir, "/")

	return filepath.Base(dir)
}
