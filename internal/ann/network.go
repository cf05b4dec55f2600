package ann

import "math"

const hiddenCount = 13

// Network is the fixed two-layer strength estimator. Parameters are
// immutable after construction; one value serves any number of
// evaluations.
type Network struct {
	inputOffset  [InputCount]float64
	inputGain    [InputCount]float64
	hiddenBias   [hiddenCount]float64
	hiddenWeight [hiddenCount][InputCount]float64
	outputWeight [hiddenCount]float64
	outputBias   float64
	outputGain   float64
	outputOffset float64
}

// Default returns the published network.
func Default() *Network {
	return &Network{
		inputOffset:  inputOffset,
		inputGain:    inputGain,
		hiddenBias:   hiddenBias,
		hiddenWeight: hiddenWeight,
		outputWeight: outputWeight,
		outputBias:   outputBias,
		outputGain:   outputGain,
		outputOffset: outputOffset,
	}
}

// Estimate runs the forward pass and returns the raw zero-gravity strength
// estimate in newtons. Inputs are mapped to the trained range with
// gain·(x−offset)−1; no clamping is applied beyond that affine map.
func (n *Network) Estimate(features [InputCount]float64) float64 {
	var p [InputCount]float64
	for i, x := range features {
		p[i] = n.inputGain[i]*(x-n.inputOffset[i]) - 1
	}

	sum2 := n.outputBias
	for node := 0; node < hiddenCount; node++ {
		sum := n.hiddenBias[node]
		for i := 0; i < InputCount; i++ {
			sum += p[i] * n.hiddenWeight[node][i]
		}
		sum2 += math.Tanh(sum) * n.outputWeight[node]
	}

	return (sum2+1)/n.outputGain + n.outputOffset
}
