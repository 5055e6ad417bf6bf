package views

var StatsFromCounts = statsFromCounts
