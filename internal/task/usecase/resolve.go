package usecase

import (
	"context"
	"fmt"

	"clickup-task-bot/internal/task"
)

// resolve walks team -> space -> [folder] -> list. Each lookup needs the id
// found by the previous one.
func (uc *implUseCase) resolve(ctx context.Context, loc task.Location) (task.ResolvedLocation, error) {
	var out task.ResolvedLocation

	teams, err := uc.repo.ListTeams(ctx)
	if err != nil {
		return out, fmt.Errorf("list teams: %w", err)
	}
	team, err := match(teams, uc.defaultTeam, task.EntityWorkspace)
	if err != nil {
		return out, err
	}
	out.TeamID = team.ID

	spaces, err := uc.repo.ListSpaces(ctx, team.ID)
	if err != nil {
		return out, fmt.Errorf("list spaces: %w", err)
	}
	space, err := match(spaces, loc.Space, task.EntitySpace)
	if err != nil {
		return out, err
	}
	out.SpaceID = space.ID

	if !loc.HasFolder() {
		lists, err := uc.repo.ListFolderlessLists(ctx, space.ID)
		if err != nil {
			return out, fmt.Errorf("list folderless lists: %w", err)
		}
		list, err := match(lists, loc.List, task.EntityList)
		if err != nil {
			return out, err
		}
		out.ListID = list.ID
		return out, nil
	}

	folders, err := uc.repo.ListFolders(ctx, space.ID)
	if err != nil {
		return out, fmt.Errorf("list folders: %w", err)
	}
	folder, err := match(folders, loc.Folder, task.EntityFolder)
	if err != nil {
		return out, err
	}
	out.FolderID = folder.ID

	lists, err := uc.repo.ListLists(ctx, folder.ID)
	if err != nil {
		return out, fmt.Errorf("list lists: %w", err)
	}
	list, err := match(lists, loc.List, task.EntityList)
	if err != nil {
		return out, err
	}
	out.ListID = list.ID

	return out, nil
}
