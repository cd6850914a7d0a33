// Package board собирает из сырых записей сервера модель отображения:
// записи раскладываются по фиксированным колонкам и ранжируются по голосам.
package board

import (
	"RetroBoard/internal/cli/model"
	"sort"
	"strings"
)

// ViewModel — производное, неперсистентное состояние доски: для каждой
// колонки — упорядоченный список записей.
type ViewModel map[model.Category][]model.Item

// Assemble раскладывает записи по колонкам и сортирует каждую колонку:
// сначала по числу голосов (убывание), при равенстве — по времени создания
// (новые выше). Сортировка стабильна: при полном совпадении ключей записи
// сохраняют взаимный порядок входа.
//
// Колонки из фиксированного набора присутствуют в результате всегда,
// даже пустые. Чистая функция: вход не модифицируется.
func Assemble(items []model.Item) ViewModel {
	groups := make(ViewModel, len(model.Categories))
	for _, c := range model.Categories {
		groups[c] = []model.Item{}
	}
	for _, it := range items {
		it.Normalize()
		groups[it.Category] = append(groups[it.Category], it)
	}

	for c, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			if len(g[i].Votes) != len(g[j].Votes) {
				return len(g[i].Votes) > len(g[j].Votes)
			}
			return g[i].CreatedAt.After(g[j].CreatedAt)
		})
		groups[c] = g
	}
	return groups
}

// HasVoted сообщает, голосовал ли пользователь за запись.
// Проекция по требованию — не кешируется.
func HasVoted(it model.Item, userID int64) bool {
	for _, v := range it.Votes {
		if v.UserID == userID {
			return true
		}
	}
	return false
}

// VoterNames возвращает имена голосовавших через запятую.
func VoterNames(it model.Item) string {
	if len(it.Votes) == 0 {
		return ""
	}
	names := make([]string, 0, len(it.Votes))
	for _, v := range it.Votes {
		names = append(names, v.Voter)
	}
	return strings.Join(names, ", ")
}

// CommentCount возвращает число комментариев записи.
func CommentCount(it model.Item) int {
	return len(it.Comments)
}
