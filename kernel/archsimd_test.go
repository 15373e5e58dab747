//go:build amd64 && goexperiment.simd && !purego

package kernel

const archsimdBuild = true
