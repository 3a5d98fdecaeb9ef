package orca

import (
	"fmt"
	"strconv"
)

// field returns fields[i], counting from the end when i is negative
func field(fields []string, i int) (string, error) {
	j := i
	if i < 0 {
		j = len(fields) + i
	}
	if j < 0 || j >= len(fields) {
		return "", fmt.Errorf("no token %d in %d fields", i, len(fields))
	}
	return fields[j], nil
}

func floatField(fields []string, i int) (float64, error) {
	s, err := field(fields, i)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

// toFloat converts a list of strings to float64s using
// strconv.ParseFloat
func toFloat(strs []string) ([]float64, error) {
	ret := make([]float64, len(strs))
	var err error
	for i, s := range strs {
		ret[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func toInt(strs []string) ([]int, error) {
	ret := make([]int, len(strs))
	var err error
	for i, s := range strs {
		ret[i], err = strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
